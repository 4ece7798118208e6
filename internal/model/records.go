package model

import (
	"io/fs"
	"path/filepath"
	"time"
)

//ownerWrite is the permission bit whose absence makes an entry read-only.
const ownerWrite fs.FileMode = 0o200

//FileRecord is a snapshot of one regular file taken when its directory was enumerated.
type FileRecord struct {
	Name    string
	Path    string // full path
	Size    int64  // in bytes
	ModTime time.Time
	Mode    fs.FileMode // permission (attribute) bits only
}

//NewFileRecord builds the record of the file described by info which lives directly under dir.
func NewFileRecord(dir string, info fs.FileInfo) FileRecord {
	return FileRecord{
		Name:    info.Name(),
		Path:    filepath.Join(dir, info.Name()),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    info.Mode().Perm(),
	}
}

func (r FileRecord) Key() string {
	return r.Name
}

func (r FileRecord) IsReadOnly() bool {
	return IsReadOnly(r.Mode)
}

//DirRecord is a directory found directly under an enumerated directory. Its children are listed on demand.
type DirRecord struct {
	Name string
	Path string
}

func NewDirRecord(dir string, name string) DirRecord {
	return DirRecord{Name: name, Path: filepath.Join(dir, name)}
}

func (r DirRecord) Key() string {
	return r.Name
}

func IsReadOnly(mode fs.FileMode) bool {
	return mode&ownerWrite == 0
}
