package iout

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	ownerWrite fs.FileMode = 0o200
	ownerAll   fs.FileMode = 0o700
)

//CopyFile copies the regular file at srcPath over dstPath (which is created or truncated).
//The copy gets srcModTime as its modification time and perm as its permission bits.
//A read-only dstPath has to be made writable beforehand.
func CopyFile(srcPath, dstPath string, srcModTime time.Time, perm fs.FileMode) error {
	if err := copyFileContents(srcPath, dstPath); err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}
	if err := os.Chmod(dstPath, perm.Perm()); err != nil {
		return fmt.Errorf("cannot set file attributes: %w", err)
	}
	if err := os.Chtimes(dstPath, time.Now(), srcModTime); err != nil {
		return fmt.Errorf("cannot set file modification time: %w", err)
	}
	return nil
}

func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("cannot read/write file content: %w", err)
	}
	if err = out.Sync(); err != nil {
		return err
	}
	return out.Close()
}

//ClearReadOnly gives the owner write permission on the entry at path if it lacks one. Symlinks are left as is.
func ClearReadOnly(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	return clearReadOnly(path, info.Mode())
}

func clearReadOnly(path string, mode fs.FileMode) error {
	if mode&fs.ModeSymlink != 0 {
		return nil
	}
	want := mode.Perm() | ownerWrite
	if mode.IsDir() {
		want |= ownerAll // the directory has to stay traversable for the removal
	}
	if want == mode.Perm() {
		return nil
	}
	if err := os.Chmod(path, want); err != nil {
		return fmt.Errorf("cannot clear read-only attribute: %w", err)
	}
	return nil
}

//ClearReadOnlyTree clears the read-only protection of every file and directory under root, root included.
//Directories are made writable before their entries are listed.
func ClearReadOnlyTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return clearReadOnly(path, info.Mode())
	})
}

//EnsureDirExists creates the directory at path (with all parents) if it doesn't exist yet.
func EnsureDirExists(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("cannot make dir: %w", err)
	}
	return nil
}

//EnsureFileExists creates an empty file at path (with all parents) if nothing is there yet.
//An existing file is left untouched.
func EnsureFileExists(path string) error {
	if err := EnsureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	return f.Close()
}
