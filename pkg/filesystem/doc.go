// Package filesystem provides the OS-backed implementation of types.FS.
package filesystem
