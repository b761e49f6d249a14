package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	WireFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"w":    WireFormat,
		"wire": WireFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case WireFormat:
		return []byte("wire"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case WireFormat:
		return ".pw"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromPath guesses the format of a file from its extension, defaulting to
// WireFormat.
func FromPath(path string) Format {
	ext := filepath.Ext(path)
	if ext == ".yml" {
		return YAMLFormat
	}
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f
		}
	}
	return WireFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{WireFormat, JSONFormat, YAMLFormat}
}
