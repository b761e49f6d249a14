package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/ir"
)

// FromIR converts node to a value of type target.
func FromIR(node *ir.Node, target reflect.Type, opts ...UnmapOption) (reflect.Value, error) {
	d := &decoder{cfg: unmapConfig(opts)}
	v, err := d.convert(node, target, "")
	if err != nil {
		return reflect.Value{}, err
	}
	if debug.Convert() {
		debug.Logf("from ir %v -> %s\n", node, typeString(target))
	}
	return v, nil
}

// FromIRInto converts node into the value ptr points to.
func FromIRInto(node *ir.Node, ptr any, opts ...UnmapOption) error {
	pv := reflect.ValueOf(ptr)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return fmt.Errorf("%w: FromIRInto needs a non-nil pointer, got %T", ErrUnsupported, ptr)
	}
	v, err := FromIR(node, pv.Type().Elem(), opts...)
	if err != nil {
		return err
	}
	pv.Elem().Set(v)
	return nil
}

type decoder struct {
	cfg *config
}

func (d *decoder) convErr(node *ir.Node, t reflect.Type, fieldPath, msg string, err error) error {
	return &ConversionError{
		FieldPath: fieldPath,
		From:      node.Type,
		To:        t,
		Message:   msg,
		Err:       err,
	}
}

// convert returns a value of exactly type t.
func (d *decoder) convert(node *ir.Node, t reflect.Type, fieldPath string) (reflect.Value, error) {
	if node == nil {
		node = ir.Null()
	}
	if t == reflectTypeType {
		return d.typeValue(node, fieldPath)
	}
	if node.Type == ir.NullType {
		return d.fromNull(t, fieldPath)
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem, err := d.convert(node, t.Elem(), fieldPath)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(elem)
		return p, nil

	case reflect.Interface:
		switch {
		case node.Type == ir.ObjectType:
			return d.fromObject(node, t, fieldPath)
		case t.NumMethod() == 0:
			return d.natural(node, t, fieldPath)
		}
		return reflect.Value{}, d.convErr(node, t, fieldPath, "only objects carry a type", nil)
	}

	if isWellKnown(t) {
		if node.Type != ir.StringType {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", nil)
		}
		v, err := parseWellKnown(node.Unquoted(), t)
		if err != nil {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", err)
		}
		return v, nil
	}
	if enum := d.cfg.registry.enumFor(t); enum != nil {
		if node.Type != ir.StringType && node.Type != ir.NumberType {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", nil)
		}
		v := reflect.New(t).Elem()
		if err := enum.parse(node.Unquoted(), v); err != nil {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", err)
		}
		return v, nil
	}
	if node.Type == ir.StringType && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		p := reflect.New(t)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(node.Unquoted())); err != nil {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", err)
		}
		return p.Elem(), nil
	}

	v := reflect.New(t).Elem()
	switch node.Type {
	case ir.TrueType, ir.FalseType:
		if t.Kind() != reflect.Bool {
			break
		}
		v.SetBool(node.Type == ir.TrueType)
		return v, nil

	case ir.NumberType:
		if !isNumberKind(t.Kind()) {
			break
		}
		if err := setNumber(node.Raw, v); err != nil {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", err)
		}
		return v, nil

	case ir.StringType:
		if t.Kind() != reflect.String {
			break
		}
		v.SetString(node.Unquoted())
		return v, nil

	case ir.ArrayType:
		switch t.Kind() {
		case reflect.Slice:
			return d.array(node, t, fieldPath)
		case reflect.Array:
			if arrayRank(t) > 1 {
				return d.multiArray(node, t, fieldPath)
			}
			return d.array(node, t, fieldPath)
		}

	case ir.ObjectType:
		switch t.Kind() {
		case reflect.Struct, reflect.Map:
			return d.fromObject(node, t, fieldPath)
		}
	}
	return reflect.Value{}, d.convErr(node, t, fieldPath, "", nil)
}

func (d *decoder) typeValue(node *ir.Node, fieldPath string) (reflect.Value, error) {
	v := reflect.New(reflectTypeType).Elem()
	switch node.Type {
	case ir.NullType:
		return v, nil
	case ir.StringType:
	default:
		return reflect.Value{}, d.convErr(node, reflectTypeType, fieldPath, "", nil)
	}
	rt, err := d.cfg.registry.Resolve(node.Unquoted())
	if err != nil {
		return reflect.Value{}, d.convErr(node, reflectTypeType, fieldPath, "", err)
	}
	v.Set(reflect.ValueOf(rt))
	return v, nil
}

// fromNull returns the value null reads as for type t.
func (d *decoder) fromNull(t reflect.Type, fieldPath string) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), nil
	case reflect.Struct:
		zc := d.cfg.registry.descriptor(t).explicitZero()
		if zc == nil {
			break
		}
		v, err := zc.call(nil)
		if err != nil {
			return reflect.Value{}, &ConstructionError{FieldPath: fieldPath, Type: t, Err: err}
		}
		return d.coerce(v, t, ir.Null(), fieldPath)
	}
	return reflect.New(t).Elem(), nil
}

// envelope returns the type identifier and the members of an object of the
// form {"<type identifier>":{...}}.
func envelope(obj *ir.Node) (string, *ir.Node, bool) {
	if len(obj.Values) != 1 {
		return "", nil, false
	}
	p := obj.Values[0]
	if p.Value.Type != ir.ObjectType {
		return "", nil, false
	}
	id := p.Name.Unquoted()
	if !IsTypeIdentifier(id) {
		return "", nil, false
	}
	return id, p.Value, true
}

// fromObject converts an object to t, which is a struct, map or interface
// type.
func (d *decoder) fromObject(obj *ir.Node, t reflect.Type, fieldPath string) (reflect.Value, error) {
	target := t
	if id, inner, ok := envelope(obj); ok {
		rt, err := d.cfg.registry.Resolve(id)
		if err != nil {
			return reflect.Value{}, d.convErr(obj, t, fieldPath, "", err)
		}
		d.cfg.logger.Debug("reading envelope", "type", id, "target", t.String(), "path", fieldPath)
		obj, target = inner, rt
	}
	bt := baseType(target)
	var v reflect.Value
	var err error
	switch bt.Kind() {
	case reflect.Struct:
		v, err = d.construct(bt, obj, fieldPath)
	case reflect.Map:
		v, err = d.fromMap(obj, bt, fieldPath)
	case reflect.Interface:
		if bt.NumMethod() != 0 {
			return reflect.Value{}, &ConstructionError{
				FieldPath: fieldPath,
				Type:      bt,
				Members:   obj.Names(),
				Message:   "interface without a type identifier",
			}
		}
		v, err = d.fromMap(obj, reflect.TypeFor[map[string]any](), fieldPath)
	default:
		return reflect.Value{}, d.convErr(obj, target, fieldPath, "", nil)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	if target.Kind() == reflect.Pointer && v.Kind() != reflect.Pointer {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}
	return d.coerce(v, t, obj, fieldPath)
}

// coerce makes v a value of type t, taking its address or dereferencing it if
// needed.
func (d *decoder) coerce(v reflect.Value, t reflect.Type, node *ir.Node, fieldPath string) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	switch {
	case v.Type().AssignableTo(t):
		res.Set(v)
	case v.Kind() == reflect.Pointer && v.Type().Elem().AssignableTo(t):
		res.Set(v.Elem())
	case v.Kind() != reflect.Pointer && reflect.PointerTo(v.Type()).AssignableTo(t):
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		res.Set(p)
	default:
		return reflect.Value{}, d.convErr(node, t, fieldPath, fmt.Sprintf("%s is not assignable", v.Type()), nil)
	}
	return res, nil
}

// construct builds a struct of type t from the pairs of obj: first through a
// constructor taking exactly the object's members as parameters, then by
// setting the members of a parameterless construction.
func (d *decoder) construct(t reflect.Type, obj *ir.Node, fieldPath string) (reflect.Value, error) {
	desc := d.cfg.registry.descriptor(t)
	n := len(obj.Values)
	for _, c := range desc.constructors(t) {
		if len(c.params) != n {
			continue
		}
		args, err := d.bind(c, obj, fieldPath)
		if err != nil {
			var lerr *ir.LookupError
			if errors.As(err, &lerr) {
				d.cfg.logger.Debug("rejecting constructor", "type", t.String(), "constructor", c.String(), "missing", lerr.Name)
				continue
			}
			return reflect.Value{}, err
		}
		v, err := c.call(args)
		if err != nil {
			return reflect.Value{}, &ConstructionError{FieldPath: fieldPath, Type: t, Members: obj.Names(), Err: err}
		}
		return d.coerce(v, t, obj, fieldPath)
	}

	var zc *ctor
	if desc == nil || len(desc.ctors) == 0 {
		zc = zeroCtor(t)
	} else {
		zc = desc.explicitZero()
	}
	if zc == nil {
		return reflect.Value{}, &ConstructionError{
			FieldPath: fieldPath,
			Type:      t,
			Members:   obj.Names(),
			Message:   "no constructor matches",
		}
	}
	v, err := zc.call(nil)
	if err != nil {
		return reflect.Value{}, &ConstructionError{FieldPath: fieldPath, Type: t, Err: err}
	}
	res, err := d.coerce(v, t, obj, fieldPath)
	if err != nil {
		return reflect.Value{}, err
	}
	for name, val := range obj.Pairs() {
		m := d.cfg.registry.writableMember(t, d.cfg.tag, name)
		if m == nil {
			return reflect.Value{}, &ConstructionError{
				FieldPath: fieldPath,
				Type:      t,
				Members:   []string{name},
				Message:   "no writable member",
			}
		}
		x, err := d.convert(val, m.Type, joinPath(fieldPath, name))
		if err != nil {
			return reflect.Value{}, err
		}
		if err := m.set(res, x); err != nil {
			return reflect.Value{}, &ConstructionError{
				FieldPath: joinPath(fieldPath, name),
				Type:      t,
				Members:   []string{name},
				Err:       err,
			}
		}
	}
	return res, nil
}

// bind converts the members of obj named by the parameters of c, preferring
// an exact name match to a case insensitive one. A parameter with no member
// gives an *ir.LookupError.
func (d *decoder) bind(c *ctor, obj *ir.Node, fieldPath string) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(c.params))
	for i, name := range c.params {
		val, err := obj.Lookup(name, false)
		if err != nil {
			val, err = obj.Lookup(name, true)
		}
		if err != nil {
			return nil, err
		}
		x, err := d.convert(val, c.in[i], joinPath(fieldPath, name))
		if err != nil {
			return nil, err
		}
		args[i] = x
	}
	return args, nil
}

func (d *decoder) fromMap(obj *ir.Node, t reflect.Type, fieldPath string) (reflect.Value, error) {
	if t.Key().Kind() != reflect.String {
		return reflect.Value{}, d.convErr(obj, t, fieldPath, fmt.Sprintf("map key type %s is not a string type", t.Key()), nil)
	}
	m := reflect.MakeMapWithSize(t, len(obj.Values))
	for name, val := range obj.Pairs() {
		x, err := d.convert(val, t.Elem(), joinPath(fieldPath, name))
		if err != nil {
			return reflect.Value{}, err
		}
		m.SetMapIndex(reflect.ValueOf(name).Convert(t.Key()), x)
	}
	return m, nil
}

// natural converts a non object node for an empty interface type t: numbers
// read as float64, strings as string, arrays as []any.
func (d *decoder) natural(node *ir.Node, t reflect.Type, fieldPath string) (reflect.Value, error) {
	var x any
	switch node.Type {
	case ir.TrueType, ir.FalseType:
		x = node.Type == ir.TrueType
	case ir.NumberType:
		f, err := ir.ParseFloat(node.Raw, 64)
		if err != nil {
			return reflect.Value{}, d.convErr(node, t, fieldPath, "", numErr(err))
		}
		x = f
	case ir.StringType:
		x = node.Unquoted()
	case ir.ArrayType:
		v, err := d.array(node, reflect.TypeFor[[]any](), fieldPath)
		if err != nil {
			return reflect.Value{}, err
		}
		x = v.Interface()
	default:
		return reflect.Value{}, d.convErr(node, t, fieldPath, "", nil)
	}
	res := reflect.New(t).Elem()
	res.Set(reflect.ValueOf(x))
	return res, nil
}
