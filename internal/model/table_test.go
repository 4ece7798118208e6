package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	requires := require.New(t)
	files := NewTable([]FileRecord{
		{Name: "a.txt", Size: 1},
		{Name: "A.txt", Size: 2},
	})

	requires.Len(files, 2)
	requires.True(files.Has("a.txt"))
	requires.False(files.Has("b.txt"))
	requires.Nil(files.Find("b.txt"))

	found := files.Find("A.txt")
	requires.NotNil(found)
	requires.Equal(int64(2), found.Size)

	dirs := NewTable([]DirRecord{NewDirRecord("/root", "sub")})
	requires.Equal("/root/sub", dirs.Find("sub").Path)
}
