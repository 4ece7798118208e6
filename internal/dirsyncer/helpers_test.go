package dirsyncer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseModTime = time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)

func writeFile(t *testing.T, path string, content string, perm os.FileMode) {
	t.Helper()
	writeFileWithModTime(t, path, content, perm, baseModTime)
}

func writeFileWithModTime(t *testing.T, path string, content string, perm os.FileMode, modTime time.Time) {
	t.Helper()
	requires := require.New(t)
	requires.NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	requires.NoError(os.WriteFile(path, []byte(content), 0o644))
	requires.NoError(os.Chmod(path, perm))
	requires.NoError(os.Chtimes(path, modTime, modTime))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func requireSameFile(t *testing.T, srcPath, dstPath string) {
	t.Helper()
	requires := require.New(t)
	srcInfo, err := os.Stat(srcPath)
	requires.NoError(err)
	dstInfo, err := os.Stat(dstPath)
	requires.NoError(err)
	requires.True(dstInfo.Mode().IsRegular(), dstPath)
	requires.Equal(srcInfo.Size(), dstInfo.Size(), dstPath)
	requires.True(srcInfo.ModTime().Equal(dstInfo.ModTime()), dstPath)
	requires.Equal(srcInfo.Mode().Perm(), dstInfo.Mode().Perm(), dstPath)
}

func requireNotExist(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "%s should not exist, stat err = %v", path, err)
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}

//endpoints returns fresh source and destination paths; the destination doesn't exist yet.
func endpoints(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	mkdir(t, srcDir)
	return srcDir, filepath.Join(root, "dst")
}

//collectingSink remembers every emitted message.
type collectingSink struct {
	messages []string
}

func (c *collectingSink) Emit(msg string) {
	c.messages = append(c.messages, msg)
}

//isSynced reports whether the file rel exists in both trees with the same size, modification time and attributes.
func isSynced(srcDir, dstDir, rel string) bool {
	srcInfo, err := os.Stat(filepath.Join(srcDir, rel))
	if err != nil {
		return false
	}
	dstInfo, err := os.Stat(filepath.Join(dstDir, rel))
	if err != nil {
		return false
	}
	return srcInfo.Size() == dstInfo.Size() && srcInfo.ModTime().Equal(dstInfo.ModTime()) &&
		srcInfo.Mode() == dstInfo.Mode()
}
