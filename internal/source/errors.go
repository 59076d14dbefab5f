package source

import "errors"

var (
	// ErrFindingsUnreadable is returned when the findings file cannot be
	// read or decoded.
	ErrFindingsUnreadable = errors.New("findings file is unreadable")
)
