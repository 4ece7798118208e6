package iout

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	requires := require.New(t)

	// 1. arrange
	srcDir, copyDir := t.TempDir(), t.TempDir()
	fileName := "some_file.txt"
	srcAbsPath := filepath.Join(srcDir, fileName)
	requires.NoError(os.WriteFile(srcAbsPath, []byte("some content"), 0o640))
	modTime := time.Date(2020, 5, 17, 10, 30, 0, 0, time.UTC)
	requires.NoError(os.Chtimes(srcAbsPath, modTime, modTime))
	srcFileInfo, err := os.Stat(srcAbsPath)
	requires.NoError(err)

	// 2. act
	destAbsPath := filepath.Join(copyDir, fileName)
	err = CopyFile(srcAbsPath, destAbsPath, srcFileInfo.ModTime(), srcFileInfo.Mode())

	// 3. assert that the original and the copied files have same names, size, modTime and attributes
	requires.NoError(err)
	copiedFileInfo, err := os.Stat(destAbsPath)
	requires.NoError(err)
	requires.Equal(fileName, copiedFileInfo.Name())
	requires.False(copiedFileInfo.IsDir())
	requires.Equal(srcFileInfo.Size(), copiedFileInfo.Size())
	requires.True(srcFileInfo.ModTime().Equal(copiedFileInfo.ModTime()))
	requires.Equal(srcFileInfo.Mode().Perm(), copiedFileInfo.Mode().Perm())
}

func TestCopyFileOverwritesLongerFile(t *testing.T) {
	requires := require.New(t)
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "src.txt"), filepath.Join(dir, "dst.txt")
	requires.NoError(os.WriteFile(src, []byte("short"), 0o644))
	requires.NoError(os.WriteFile(dst, []byte("a much longer previous content"), 0o644))

	requires.NoError(CopyFile(src, dst, time.Now(), 0o644))

	content, err := os.ReadFile(dst)
	requires.NoError(err)
	requires.Equal("short", string(content))
}

func TestClearReadOnlyTree(t *testing.T) {
	requires := require.New(t)
	root := filepath.Join(t.TempDir(), "old")
	nested := filepath.Join(root, "nested")
	requires.NoError(EnsureDirExists(nested))
	file := filepath.Join(nested, "locked.txt")
	requires.NoError(os.WriteFile(file, []byte("x"), 0o444))
	requires.NoError(os.Chmod(nested, 0o555))
	requires.NoError(os.Chmod(root, 0o555))

	requires.NoError(ClearReadOnlyTree(root))

	for _, path := range []string{root, nested, file} {
		info, err := os.Stat(path)
		requires.NoError(err)
		requires.NotZero(info.Mode().Perm()&0o200, path)
	}
	requires.NoError(os.RemoveAll(root))
}

func TestClearReadOnlyKeepsWritableFile(t *testing.T) {
	requires := require.New(t)
	file := filepath.Join(t.TempDir(), "f.txt")
	requires.NoError(os.WriteFile(file, []byte("x"), 0o640))

	requires.NoError(ClearReadOnly(file))

	info, err := os.Stat(file)
	requires.NoError(err)
	requires.Equal(os.FileMode(0o640), info.Mode().Perm())
}

func TestEnsureDirExistsCannotMakeDir(t *testing.T) {
	requires := require.New(t)
	file := filepath.Join(t.TempDir(), "some_file.txt")
	requires.NoError(os.WriteFile(file, nil, 0o644))

	err := EnsureDirExists(filepath.Join(file, "sub")) // file is not a directory!

	requires.Error(err)
	requires.ErrorContains(err, "cannot make dir")
	requires.ErrorIs(err, syscall.ENOTDIR)
}

func TestEnsureFileExists(t *testing.T) {
	requires := require.New(t)
	path := filepath.Join(t.TempDir(), "logs", "dirsync.log")

	requires.NoError(EnsureFileExists(path))
	requires.NoError(os.WriteFile(path, []byte("kept"), 0o644))
	requires.NoError(EnsureFileExists(path))

	content, err := os.ReadFile(path)
	requires.NoError(err)
	requires.Equal("kept", string(content))
}
