package parse

import (
	"errors"
)

var (
	ErrParse        = errors.New("parse error")
	ErrMissingColon = errors.New("expected name:value")
	ErrPairName     = errors.New("name must be a string")
)
