package ir

import (
	"errors"
	"fmt"
)

var (
	ErrLookup = errors.New("lookup")
	ErrPath   = errors.New("path")
)

// LookupError reports a name which is not present in an object.
type LookupError struct {
	Name string
	Fold bool
}

func (e *LookupError) Unwrap() error {
	return ErrLookup
}

func (e *LookupError) Error() string {
	if e.Fold {
		return fmt.Sprintf("%s: no member matching %q (case insensitive)", ErrLookup, e.Name)
	}
	return fmt.Sprintf("%s: no member %q", ErrLookup, e.Name)
}
