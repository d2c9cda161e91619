package types

import "errors"

// Icebox defines the interface for backend-agnostic storage access.
// Callers attach to a backend, access collections by table name, and
// detach when done.
type Icebox interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Icebox to the backend described by config.
	// Creates the DataDir if it does not exist. Idempotent on first call;
	// returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations on tables return ErrIceboxDetached.
	Detach() error
}

// Icebox lifecycle errors.
var (
	ErrIceboxDetached  = errors.New("icebox is detached")
	ErrAlreadyAttached = errors.New("icebox is already attached")
	ErrTableNotFound   = errors.New("table not found")
)
