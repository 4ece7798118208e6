package model

//OperationKind names a filesystem operation performed during synchronization.
type OperationKind string

const (
	OpKindCreateDir  OperationKind = "create directory"
	OpKindCopyFile   OperationKind = "copy file"
	OpKindDeleteFile OperationKind = "delete file"
	OpKindDeleteDir  OperationKind = "delete directory"
	OpKindListDir    OperationKind = "list directory"
	OpKindUnlockDir  OperationKind = "clear read-only attribute of directory"
)

//Counts applies a successful operation of this kind to the results. Listing and unlocking aren't counted.
func (k OperationKind) Counts(r *SyncResults) {
	switch k {
	case OpKindCreateDir:
		r.DirectoriesCreated++
	case OpKindCopyFile:
		r.FilesCopied++
	case OpKindDeleteFile:
		r.FilesDeleted++
	case OpKindDeleteDir:
		r.DirectoriesDeleted++
	}
}
