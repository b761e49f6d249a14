package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/ir"
)

// ToIR converts v to a node, taking the dynamic type of v as its declared
// type, so the result has no envelope at the top level.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	val := reflect.ValueOf(v)
	return ToIRValue(val, val.Type(), opts...)
}

// ToIRValue converts val to a node. declared is the static type under which
// val is known to its reader; composite values whose runtime type differs from
// the declared type are wrapped in an envelope naming the runtime type.
func ToIRValue(val reflect.Value, declared reflect.Type, opts ...MapOption) (*ir.Node, error) {
	e := &encoder{
		cfg:     mapConfig(opts),
		visited: make(map[visitKey]string),
	}
	if declared == nil && val.IsValid() {
		declared = val.Type()
	}
	node, err := e.value(val, declared, "")
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("to ir %s -> %v\n", typeString(declared), node)
	}
	return node, nil
}

type encoder struct {
	cfg *config
	// visited tracks pointers, maps and slices on the current path
	visited map[visitKey]string
}

// visitKey identifies a reference. References of different types, and slices
// of different lengths, are distinct even at the same address.
type visitKey struct {
	t   reflect.Type
	ptr uintptr
	n   int
}

// enter records the reference held by val, returning an error if it is already
// on the current path.
func (e *encoder) enter(val reflect.Value, fieldPath string) (visitKey, error) {
	k := visitKey{t: val.Type(), ptr: val.Pointer(), n: -1}
	if val.Kind() == reflect.Slice {
		k.n = val.Len()
	}
	if prevPath, seen := e.visited[k]; seen {
		return k, e.cycleErr(fieldPath, prevPath)
	}
	e.visited[k] = fieldPath
	return k, nil
}

func (e *encoder) value(val reflect.Value, declared reflect.Type, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if val.Kind() == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
		return e.value(val.Elem(), declared, fieldPath)
	}
	typ := val.Type()
	if typ.Implements(reflectTypeType) && typ.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ir.Null(), nil
		}
		rt := val.Interface().(reflect.Type)
		return ir.FromString(e.cfg.registry.QualifiedName(rt)), nil
	}
	if isWellKnown(typ) {
		return ir.FromString(formatWellKnown(val)), nil
	}
	if enum := e.cfg.registry.enumFor(typ); enum != nil {
		return ir.FromString(enum.format(val)), nil
	}

	kind := typ.Kind()
	if kind == reflect.Pointer {
		if val.IsNil() {
			return ir.Null(), nil
		}
		k, err := e.enter(val, fieldPath)
		if err != nil {
			return nil, err
		}
		elemDeclared := declared
		if declared == typ {
			elemDeclared = typ.Elem()
		}
		node, err := e.value(val.Elem(), elemDeclared, fieldPath)
		delete(e.visited, k)
		return node, err
	}

	if node, ok, err := e.textMarshal(val, fieldPath); ok {
		return node, err
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromUint(val.Uint()), nil

	case reflect.Float32:
		return ir.FromFloat(val.Float(), 32), nil

	case reflect.Float64:
		return ir.FromFloat(val.Float(), 64), nil

	case reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
		if val.Len() == 0 {
			return ir.FromSlice(nil), nil
		}
		k, err := e.enter(val, fieldPath)
		if err != nil {
			return nil, err
		}
		node, err := e.slice(val, fieldPath)
		delete(e.visited, k)
		return node, err

	case reflect.Array:
		if arrayRank(typ) > 1 {
			return e.multiArray(val, fieldPath)
		}
		return e.slice(val, fieldPath)

	case reflect.Map:
		if val.IsNil() {
			return ir.Null(), nil
		}
		k, err := e.enter(val, fieldPath)
		if err != nil {
			return nil, err
		}
		node, err := e.mapValue(val, fieldPath)
		delete(e.visited, k)
		return node, err

	case reflect.Struct:
		return e.structValue(val, declared, fieldPath)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", typ),
			Err:       ErrUnsupported,
		}
	}
}

func (e *encoder) cycleErr(fieldPath, prevPath string) error {
	return &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("circular reference detected: %s -> %s (previously seen at %s)", prevPath, fieldPath, prevPath),
		Err:       ErrCycle,
	}
}

func (e *encoder) textMarshal(val reflect.Value, fieldPath string) (*ir.Node, bool, error) {
	if !val.CanInterface() {
		return nil, false, nil
	}
	tm, ok := val.Interface().(encoding.TextMarshaler)
	if !ok && val.Kind() != reflect.Pointer && reflect.PointerTo(val.Type()).Implements(textMarshalerType) {
		cp := reflect.New(val.Type())
		cp.Elem().Set(val)
		tm, ok = cp.Interface().(encoding.TextMarshaler)
	}
	if !ok {
		return nil, false, nil
	}
	text, err := tm.MarshalText()
	if err != nil {
		return nil, true, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	return ir.FromString(string(text)), true, nil
}

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func (e *encoder) slice(val reflect.Value, fieldPath string) (*ir.Node, error) {
	n := val.Len()
	elemType := val.Type().Elem()
	values := make([]*ir.Node, n)
	for i := range n {
		node, err := e.value(val.Index(i), elemType, fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		values[i] = node
	}
	return ir.FromSlice(values), nil
}

func (e *encoder) mapValue(val reflect.Value, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map key type %s is not a string type", typ.Key()),
			Err:       ErrUnsupported,
		}
	}
	keys := val.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	pairs := make([]*ir.Node, len(keys))
	for i, k := range keys {
		node, err := e.value(val.MapIndex(k), typ.Elem(), joinPath(fieldPath, k.String()))
		if err != nil {
			return nil, err
		}
		pairs[i] = ir.Pair(k.String(), node)
	}
	return ir.FromPairs(pairs), nil
}

func (e *encoder) structValue(val reflect.Value, declared reflect.Type, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	members := e.cfg.registry.readMembers(typ, e.cfg.tag)
	if len(members) == 0 {
		return ir.Null(), nil
	}
	pairs := make([]*ir.Node, len(members))
	for i := range members {
		m := &members[i]
		node, err := e.value(m.get(val), m.Type, joinPath(fieldPath, m.Name))
		if err != nil {
			return nil, err
		}
		pairs[i] = ir.Pair(m.Name, node)
	}
	obj := ir.FromPairs(pairs)
	if declared == nil || declared == typ || declared == reflect.PointerTo(typ) {
		return obj, nil
	}
	id := e.cfg.registry.observe(typ)
	e.cfg.logger.Debug("writing envelope", "type", id, "declared", declared.String(), "path", fieldPath)
	return ir.FromPairs([]*ir.Node{ir.Pair(id, obj)}), nil
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}
