package dotpath

import "errors"

var (
	// ErrSyntax indicates a malformed path expression at parse time.
	ErrSyntax = errors.New("dotpath: syntax error")

	// ErrNotFound is returned by FindFirst when the path matches nothing.
	// FindAll never returns it; an empty slice is the equivalent.
	ErrNotFound = errors.New("dotpath: no match")
)
