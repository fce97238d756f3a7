package entities

import "errors"

var (
	// ErrNotDynamicLibrary is returned when the root path does not carry the dynamic library extension.
	ErrNotDynamicLibrary = errors.New("not a dynamic library")

	// ErrListTimeout is returned when the dependency listing tool does not finish in time.
	ErrListTimeout = errors.New("dependency listing timed out")
)
