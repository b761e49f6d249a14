package gomap

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/signadot/polywire/ir"
)

func parseSigned[T constraints.Signed](raw string) (T, error) {
	bits := reflect.TypeFor[T]().Bits()
	i, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid %T value %q: %w", zero, raw, numErr(err))
	}
	return T(i), nil
}

func parseUnsigned[T constraints.Unsigned](raw string) (T, error) {
	bits := reflect.TypeFor[T]().Bits()
	u, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid %T value %q: %w", zero, raw, numErr(err))
	}
	return T(u), nil
}

func parseFloating[T constraints.Float](raw string) (T, error) {
	bits := reflect.TypeFor[T]().Bits()
	f, err := ir.ParseFloat(raw, bits)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("invalid %T value %q: %w", zero, raw, numErr(err))
	}
	return T(f), nil
}

func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

// setNumber parses raw into the numeric value v.
func setNumber(raw string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Int:
		return setSigned[int](raw, v)
	case reflect.Int8:
		return setSigned[int8](raw, v)
	case reflect.Int16:
		return setSigned[int16](raw, v)
	case reflect.Int32:
		return setSigned[int32](raw, v)
	case reflect.Int64:
		return setSigned[int64](raw, v)
	case reflect.Uint:
		return setUnsigned[uint](raw, v)
	case reflect.Uint8:
		return setUnsigned[uint8](raw, v)
	case reflect.Uint16:
		return setUnsigned[uint16](raw, v)
	case reflect.Uint32:
		return setUnsigned[uint32](raw, v)
	case reflect.Uint64:
		return setUnsigned[uint64](raw, v)
	case reflect.Uintptr:
		return setUnsigned[uintptr](raw, v)
	case reflect.Float32:
		f, err := parseFloating[float32](raw)
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
		return nil
	case reflect.Float64:
		f, err := parseFloating[float64](raw)
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	}
	return ErrUnsupported
}

func setSigned[T constraints.Signed](raw string, v reflect.Value) error {
	i, err := parseSigned[T](raw)
	if err != nil {
		return err
	}
	v.SetInt(int64(i))
	return nil
}

func setUnsigned[T constraints.Unsigned](raw string, v reflect.Value) error {
	u, err := parseUnsigned[T](raw)
	if err != nil {
		return err
	}
	v.SetUint(uint64(u))
	return nil
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
