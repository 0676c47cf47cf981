package tips

import "errors"

var (
	ErrNotFound       = errors.New("tip calculation not found")
	ErrZeroTotalHours = errors.New("total hours cannot be zero")
	ErrNegativeTips   = errors.New("total tips cannot be negative")
	ErrNegativeHours  = errors.New("hours worked cannot be negative")
)
