package employees

import "errors"

var (
	ErrNotFound   = errors.New("employee not found")
	ErrEmptyPatch = errors.New("no fields provided for update")
	ErrEmptyName  = errors.New("employee name is required")
)
