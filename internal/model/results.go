package model

import "fmt"

//SyncResults holds the counters of one synchronization run.
//It's owned by the run that created it and is never shared between runs.
type SyncResults struct {
	FilesCopied        int `json:"filesCopied"`
	FilesUpToDate      int `json:"filesUpToDate"`
	FilesDeleted       int `json:"filesDeleted"`
	FilesIgnored       int `json:"filesIgnored"`
	DirectoriesCreated int `json:"directoriesCreated"`
	DirectoriesDeleted int `json:"directoriesDeleted"`
	DirectoriesIgnored int `json:"directoriesIgnored"`
}

//Changed reports whether the run mutated the destination tree.
func (r SyncResults) Changed() bool {
	return r.FilesCopied+r.FilesDeleted+r.DirectoriesCreated+r.DirectoriesDeleted > 0
}

func (r SyncResults) String() string {
	return fmt.Sprintf("files: %d copied, %d up to date, %d deleted, %d ignored; "+
		"directories: %d created, %d deleted, %d ignored",
		r.FilesCopied, r.FilesUpToDate, r.FilesDeleted, r.FilesIgnored,
		r.DirectoriesCreated, r.DirectoriesDeleted, r.DirectoriesIgnored)
}
