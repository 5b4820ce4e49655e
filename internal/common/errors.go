package common

import "errors"

var (
	// ErrorNotFound is returned by lookups that find nothing.
	ErrorNotFound = errors.New("not found")

	// ErrorInvalidPage rejects page numbers below 1 or non-numeric input.
	ErrorInvalidPage = errors.New("invalid page")

	// ErrorInvalidPerPage rejects page sizes below 1.
	ErrorInvalidPerPage = errors.New("invalid per_page")
)
