package dirsyncer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"dirsync/internal/model"
	"dirsync/pkg/helpers/iout"

	"golang.org/x/sync/semaphore"
)

//Syncer performs one-way synchronization of a destination directory tree with a source directory tree.
//
//A run copies new and changed files, deletes destination files and directories which are absent in the source,
//and creates missing destination directories. The first failed filesystem operation aborts the whole run;
//nothing done before it is rolled back.
type Syncer struct {
	srcDir  string
	dstDir  string
	sink    Sink
	filter  *filter
	running *semaphore.Weighted
}

type Option func(*Syncer)

//WithSink sets the sink for the progress messages. See Syncer.SetLog.
func WithSink(sink Sink) Option {
	return func(s *Syncer) { s.sink = sink }
}

//WithExcludePatterns makes the runs skip the source entries matching any of the gitignore-style patterns.
//Patterns are matched against the slash-separated path relative to the source directory.
func WithExcludePatterns(patterns ...string) Option {
	return func(s *Syncer) { s.filter = newFilter(patterns) }
}

func NewSyncer(srcDir, dstDir string, opts ...Option) *Syncer {
	s := &Syncer{srcDir: srcDir, dstDir: dstDir, running: semaphore.NewWeighted(1)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

//SetLog sets (or, with nil, removes) the sink for the progress messages. Without a sink the runs are silent.
//It must not be called while a run is in progress.
func (s *Syncer) SetLog(sink Sink) {
	s.sink = sink
}

//Start performs one synchronization run and returns its results.
//
//A nil error means the run completed. Otherwise the run was either rejected by the validation
//(a *ValidationError, zero results, nothing touched) or aborted by a failed operation (an *OpError,
//the results count what had been done before). Only one run per Syncer may be active at a time,
//a concurrent call gets ErrRunInProgress.
func (s *Syncer) Start() (model.SyncResults, error) {
	var results model.SyncResults
	if !s.running.TryAcquire(1) {
		return results, ErrRunInProgress
	}
	defer s.running.Release(1)

	srcDir, dstDir, err := s.validate()
	if err != nil {
		return results, err
	}
	err = s.processDirectory(srcDir, dstDir, "", &results)
	return results, err
}

//ProcessDirectory synchronizes dstDir with srcDir recursively, adding what it does to results.
//Exclusion patterns are matched relative to srcDir.
func (s *Syncer) ProcessDirectory(srcDir, dstDir string, results *model.SyncResults) error {
	return s.processDirectory(srcDir, dstDir, "", results)
}

//DeleteDirectory removes dir with all its contents, even if some of them are read-only.
func (s *Syncer) DeleteDirectory(dir string) error {
	// every entry has to be writable before the removal starts
	if err := iout.ClearReadOnlyTree(dir); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

func (s *Syncer) validate() (string, string, error) {
	srcDir, err := filepath.Abs(s.srcDir)
	if err != nil {
		s.trace("Error: source directory %s is invalid. %v", s.srcDir, err)
		return "", "", &ValidationError{SrcDir: s.srcDir, DstDir: s.dstDir, Err: err}
	}
	dstDir, err := filepath.Abs(s.dstDir)
	if err != nil {
		s.trace("Error: destination directory %s is invalid. %v", s.dstDir, err)
		return "", "", &ValidationError{SrcDir: s.srcDir, DstDir: s.dstDir, Err: err}
	}

	if isWithin(srcDir, dstDir) || isWithin(dstDir, srcDir) {
		s.trace("Error: source directory %s and destination directory %s cannot contain each other", srcDir, dstDir)
		return "", "", &ValidationError{SrcDir: srcDir, DstDir: dstDir, Err: ErrEndpointsOverlap}
	}

	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		s.trace("Error: source directory %s not found", srcDir)
		return "", "", &ValidationError{SrcDir: srcDir, DstDir: dstDir, Err: ErrSourceNotFound}
	}
	return srcDir, dstDir, nil
}

//isWithin reports whether path is root itself or lies under it. Both must be clean absolute paths.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (s *Syncer) processDirectory(srcDir, dstDir, relDir string, results *model.SyncResults) error {
	if err := s.prepareDestination(dstDir, results); err != nil {
		return err
	}

	src, err := listDirectory(srcDir)
	if err != nil {
		return s.fail(model.OpKindListDir, srcDir, err)
	}
	dst, err := listDirectory(dstDir)
	if err != nil {
		return s.fail(model.OpKindListDir, dstDir, err)
	}

	srcFiles, dstFiles := model.NewTable(src.files), model.NewTable(dst.files)
	srcDirs, dstDirs := model.NewTable(src.dirs), model.NewTable(dst.dirs)
	srcSpecials, dstSpecials := model.NewTable(src.specials), model.NewTable(dst.specials)

	// make sure all the source files exist in destination and are up to date
	for _, srcFile := range src.files {
		if s.filter.excludes(path.Join(relDir, srcFile.Name), false) {
			s.trace("Ignoring: %s", srcFile.Path)
			results.FilesIgnored++
			continue
		}

		dstFile := dstFiles.Find(srcFile.Name)
		if model.IsUpToDate(srcFile, dstFile) {
			results.FilesUpToDate++
			continue
		}

		dstPath := filepath.Join(dstDir, srcFile.Name)
		if clash := dstDirs.Find(srcFile.Name); clash != nil {
			if err := s.deleteDirectory(clash.Path, results); err != nil {
				return err
			}
		}
		if clash := dstSpecials.Find(srcFile.Name); clash != nil {
			// never write through a symlink
			if err := s.deleteFile(clash.path, false, results); err != nil {
				return err
			}
		}
		if err := s.copyFile(srcFile, dstFile, dstPath, results); err != nil {
			return err
		}
	}
	for _, srcSpecial := range src.specials {
		s.trace("Ignoring: %s", srcSpecial.path)
		results.FilesIgnored++
	}

	// delete extra files in destination directory
	for _, dstFile := range dst.files {
		if srcFiles.Has(dstFile.Name) || srcSpecials.Has(dstFile.Name) ||
			s.filter.excludes(path.Join(relDir, dstFile.Name), false) {
			continue
		}
		if err := s.deleteFile(dstFile.Path, dstFile.IsReadOnly(), results); err != nil {
			return err
		}
	}
	for _, dstSpecial := range dst.specials {
		if srcFiles.Has(dstSpecial.name) || srcSpecials.Has(dstSpecial.name) ||
			s.filter.excludes(path.Join(relDir, dstSpecial.name), false) {
			continue
		}
		if err := s.deleteFile(dstSpecial.path, false, results); err != nil {
			return err
		}
	}

	// recursively process source subdirectories
	for _, srcSubdir := range src.dirs {
		relSubdir := path.Join(relDir, srcSubdir.Name)
		if s.filter.excludes(relSubdir, true) {
			s.trace("Ignoring directory: %s", srcSubdir.Path)
			results.DirectoriesIgnored++
			continue
		}
		if err := s.processDirectory(srcSubdir.Path, filepath.Join(dstDir, srcSubdir.Name), relSubdir, results); err != nil {
			return err
		}
	}

	// delete destination subdirectories which are absent in source
	for _, dstSubdir := range dst.dirs {
		if srcDirs.Has(dstSubdir.Name) || srcSpecials.Has(dstSubdir.Name) ||
			s.filter.excludes(path.Join(relDir, dstSubdir.Name), true) {
			continue
		}
		if srcFiles.Has(dstSubdir.Name) { // already replaced with the file of the same name
			continue
		}
		if err := s.deleteDirectory(dstSubdir.Path, results); err != nil {
			return err
		}
	}

	return nil
}

//prepareDestination creates dstDir if it doesn't exist, or makes it writable if it's read-only.
func (s *Syncer) prepareDestination(dstDir string, results *model.SyncResults) error {
	info, err := os.Stat(dstDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.trace("Creating directory: %s", dstDir)
		if err := os.MkdirAll(dstDir, 0o755); err != nil {
			return s.fail(model.OpKindCreateDir, dstDir, err)
		}
		model.OpKindCreateDir.Counts(results)
		return nil
	case err != nil:
		return s.fail(model.OpKindCreateDir, dstDir, err)
	case !info.IsDir():
		return s.fail(model.OpKindCreateDir, dstDir, errNotDir)
	case model.IsReadOnly(info.Mode()):
		if err := iout.ClearReadOnly(dstDir); err != nil {
			return s.fail(model.OpKindUnlockDir, dstDir, err)
		}
	}
	return nil
}

func (s *Syncer) copyFile(srcFile model.FileRecord, dstFile *model.FileRecord, dstPath string, results *model.SyncResults) error {
	if dstFile != nil && dstFile.IsReadOnly() {
		if err := iout.ClearReadOnly(dstPath); err != nil {
			return s.fail(model.OpKindCopyFile, dstPath, err)
		}
	}

	s.trace("Copying: %s -> %s", srcFile.Path, dstPath)
	if err := iout.CopyFile(srcFile.Path, dstPath, srcFile.ModTime, srcFile.Mode); err != nil {
		return s.fail(model.OpKindCopyFile, dstPath, fmt.Errorf("from %s: %w", srcFile.Path, err))
	}
	model.OpKindCopyFile.Counts(results)
	return nil
}

func (s *Syncer) deleteFile(filePath string, readOnly bool, results *model.SyncResults) error {
	s.trace("Deleting: %s", filePath)
	if readOnly {
		if err := iout.ClearReadOnly(filePath); err != nil {
			return s.fail(model.OpKindDeleteFile, filePath, err)
		}
	}
	if err := os.Remove(filePath); err != nil {
		return s.fail(model.OpKindDeleteFile, filePath, err)
	}
	model.OpKindDeleteFile.Counts(results)
	return nil
}

func (s *Syncer) deleteDirectory(dir string, results *model.SyncResults) error {
	s.trace("Deleting directory: %s", dir)
	if err := s.DeleteDirectory(dir); err != nil {
		return s.fail(model.OpKindDeleteDir, dir, err)
	}
	model.OpKindDeleteDir.Counts(results)
	return nil
}

func (s *Syncer) fail(op model.OperationKind, path string, err error) error {
	opErr := &OpError{Op: op, Path: path, Err: err}
	s.trace("Error: %v", opErr)
	return opErr
}

func (s *Syncer) trace(format string, args ...interface{}) {
	if s.sink == nil {
		return
	}
	s.sink.Emit(fmt.Sprintf(format, args...))
}
