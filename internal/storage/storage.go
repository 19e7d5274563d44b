// Package storage persists uploaded files by generated name.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidName is returned for names that are not a bare file name.
	ErrInvalidName = errors.New("invalid file name")
	// ErrNotFound is returned when no file is stored under the name.
	ErrNotFound = errors.New("file not found")
)

// checkName rejects anything that could leave the storage root.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return ErrInvalidName
	}
	return nil
}
