package dirsyncer

import (
	"errors"
	"fmt"

	"dirsync/internal/model"
)

var (
	ErrEndpointsOverlap = errors.New("source and destination directories cannot contain each other")
	ErrSourceNotFound   = errors.New("source directory not found")
	ErrRunInProgress    = errors.New("synchronization run is already in progress")

	errNotDir = errors.New("path exists and is not a directory")
)

//ValidationError means the run was rejected before touching the filesystem.
type ValidationError struct {
	SrcDir string
	DstDir string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cannot synchronize %s to %s: %v", e.SrcDir, e.DstDir, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

//OpError means a filesystem operation failed and the run was aborted.
type OpError struct {
	Op   model.OperationKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
