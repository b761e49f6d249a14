package gomap

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

type enumInfo struct {
	unsigned bool
	names    map[uint64]string
	values   map[string]uint64
}

// RegisterEnum registers the integer type E as an enumeration whose values are
// written by the names given. Values without a name are written as their
// decimal text. If r is nil, the default registry is used.
func RegisterEnum[E constraints.Integer](r *Registry, names map[E]string, opts ...RegisterOption) error {
	if r == nil {
		r = defaultRegistry
	}
	t := reflect.TypeFor[E]()
	info := &enumInfo{
		unsigned: isUnsigned(t.Kind()),
		names:    make(map[uint64]string, len(names)),
		values:   make(map[string]uint64, len(names)),
	}
	for v, name := range names {
		if name == "" {
			return fmt.Errorf("%w: %s: empty name for %d", ErrRegister, t, v)
		}
		if _, dup := info.values[name]; dup {
			return fmt.Errorf("%w: %s: duplicate name %q", ErrRegister, t, name)
		}
		info.names[uint64(v)] = name
		info.values[name] = uint64(v)
	}
	ro := &registerOpts{}
	for _, opt := range opts {
		opt(ro)
	}
	if len(ro.descOpts) != 0 {
		return fmt.Errorf("%w: %s: enumerations take no constructors or properties", ErrRegister, t)
	}
	return r.add(&typeInfo{Type: t, Name: ro.name, enum: info})
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func (e *enumInfo) bits(v reflect.Value) uint64 {
	if e.unsigned {
		return v.Uint()
	}
	return uint64(v.Int())
}

// format returns the name of v, or its decimal text if it has none.
func (e *enumInfo) format(v reflect.Value) string {
	if name, ok := e.names[e.bits(v)]; ok {
		return name
	}
	if e.unsigned {
		return strconv.FormatUint(v.Uint(), 10)
	}
	return strconv.FormatInt(v.Int(), 10)
}

// parse sets v, of the enumeration type, from a name or decimal text.
func (e *enumInfo) parse(s string, v reflect.Value) error {
	if bits, ok := e.values[s]; ok {
		if e.unsigned {
			v.SetUint(bits)
		} else {
			v.SetInt(int64(bits))
		}
		return nil
	}
	if e.unsigned {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not a name of %s", s, v.Type())
		}
		if v.OverflowUint(u) {
			return fmt.Errorf("%s: %d: %w", v.Type(), u, strconv.ErrRange)
		}
		v.SetUint(u)
		return nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a name of %s", s, v.Type())
	}
	if v.OverflowInt(i) {
		return fmt.Errorf("%s: %d: %w", v.Type(), i, strconv.ErrRange)
	}
	v.SetInt(i)
	return nil
}
