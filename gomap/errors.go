package gomap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/polywire/ir"
)

var (
	ErrConversion   = errors.New("conversion")
	ErrConstruction = errors.New("construction")
	ErrUnknownType  = errors.New("unknown type identifier")
	ErrUnsupported  = errors.New("unsupported")
	ErrCycle        = errors.New("circular reference")
	ErrRegister     = errors.New("register")
)

// MarshalError represents an error converting a Go value to a node.
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// ConversionError reports a node which has no conversion to the requested Go
// type, or whose text is not valid for it.
type ConversionError struct {
	FieldPath string
	From      ir.Type
	To        reflect.Type
	Message   string
	Err       error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %s to %s", e.From, typeString(e.To))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("conversion error at %s: %s", e.FieldPath, msg)
	}
	return "conversion error: " + msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

// ConstructionError reports an object which could not be turned into an
// instance of Type. Members names the object members which could not be bound.
type ConstructionError struct {
	FieldPath string
	Type      reflect.Type
	Members   []string
	Message   string
	Err       error
}

func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("cannot construct %s", typeString(e.Type))
	if len(e.Members) != 0 {
		msg += fmt.Sprintf(" from members [%s]", strings.Join(e.Members, ", "))
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("construction error at %s: %s", e.FieldPath, msg)
	}
	return "construction error: " + msg
}

func (e *ConstructionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConstruction}
	}
	return []error{ErrConstruction, e.Err}
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
