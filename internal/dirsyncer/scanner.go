package dirsyncer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"dirsync/internal/model"
)

//special is an entry that is neither a regular file nor a directory (symlink, socket, device, ...).
type special struct {
	name string
	path string
}

func (s special) Key() string {
	return s.name
}

//listing holds the entries found directly under one directory.
type listing struct {
	files    []model.FileRecord
	dirs     []model.DirRecord
	specials []special
}

func listDirectory(dir string) (listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return listing{}, err
	}

	var l listing
	for _, e := range entries {
		switch {
		case e.Type().IsRegular():
			info, err := e.Info()
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) { // removed since ReadDir
					continue
				}
				return listing{}, err
			}
			l.files = append(l.files, model.NewFileRecord(dir, info))
		case e.IsDir():
			l.dirs = append(l.dirs, model.NewDirRecord(dir, e.Name()))
		default:
			l.specials = append(l.specials, special{name: e.Name(), path: filepath.Join(dir, e.Name())})
		}
	}
	return l, nil
}
