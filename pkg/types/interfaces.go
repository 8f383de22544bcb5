package types

import (
	"io/fs"
)

// FS is the filesystem interface required for rulecast operations.
// Providers and the orchestrator never touch the os package directly so
// tests can inject alternative implementations.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Removal operations
	Remove(name string) error
	RemoveAll(path string) error
}
