package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrDocBalance   = errors.New("imbalanced document")
	ErrEmptyDoc     = errors.New("empty document")
	ErrLiteral      = errors.New("bad literal")
)

// ParseError reports malformed text at a position in the source document.
type ParseError struct {
	Err error
	Pos *Pos
	Msg string
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("%s: %s %s", e.Err.Error(), e.Msg, e.Pos.String())
}

// NewParseErr creates a ParseError for the offset i of span s.
func NewParseErr(err error, s Span, i int, format string, args ...any) *ParseError {
	return &ParseError{
		Err: err,
		Pos: s.Pos(i),
		Msg: fmt.Sprintf(format, args...),
	}
}

