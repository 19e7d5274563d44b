package models

import "errors"

// ErrAlreadyExists is returned by storage when a unique constraint rejects a write.
var ErrAlreadyExists = errors.New("record already exists")
