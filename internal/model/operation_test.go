package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperationKind_Counts(t *testing.T) {
	var results SyncResults
	for _, kind := range []OperationKind{OpKindCreateDir, OpKindCopyFile, OpKindCopyFile, OpKindDeleteFile, OpKindDeleteDir} {
		kind.Counts(&results)
	}

	require.Equal(t, SyncResults{FilesCopied: 2, FilesDeleted: 1, DirectoriesCreated: 1, DirectoriesDeleted: 1}, results)
	require.True(t, results.Changed())
	require.False(t, SyncResults{FilesUpToDate: 5, FilesIgnored: 1}.Changed())
}
