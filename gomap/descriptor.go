package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

type registerOpts struct {
	name     string
	descOpts []DescriptorOption
}

// RegisterOption configures a type registration.
type RegisterOption func(*registerOpts)

// Name gives the type an explicit identifier. The identifier must contain
// "Version=", "Culture=" and "PublicKeyToken=".
func Name(id string) RegisterOption {
	return func(ro *registerOpts) { ro.name = id }
}

// DescriptorOption adds a constructor or a property to a type's descriptor.
type DescriptorOption func(*Descriptor) error

// Constructor registers fn as a constructor. fn must be a function whose
// result is the registered type or a pointer to it, optionally followed by an
// error. params names fn's parameters, in order; objects bind their members to
// parameters by name, preferring an exact match to one ignoring case.
//
// Once a type has any registered constructor, it is only constructed by its
// registered constructors.
func Constructor(fn any, params ...string) RegisterOption {
	return descOpt(func(d *Descriptor) error {
		c, err := newCtor(d.Type, fn, params)
		if err != nil {
			return err
		}
		d.ctors = append(d.ctors, c)
		return nil
	})
}

// Property registers a named member accessed through functions. get has the
// form func(T) V or func(*T) V, set has the form func(*T, V) with an optional
// error result. Either may be nil, but not both.
//
// Properties are written only for types with no exported fields.
func Property(name string, get, set any) RegisterOption {
	return descOpt(func(d *Descriptor) error {
		p, err := newProperty(d.Type, name, get, set)
		if err != nil {
			return err
		}
		d.props = append(d.props, p)
		return nil
	})
}

func descOpt(f DescriptorOption) RegisterOption {
	return func(ro *registerOpts) { ro.descOpts = append(ro.descOpts, f) }
}

// Descriptor describes how to construct and access a struct type beyond its
// exported fields.
type Descriptor struct {
	Type  reflect.Type
	ctors []*ctor
	props []*property
}

func newDescriptor(t reflect.Type, opts []DescriptorOption) (*Descriptor, error) {
	d := &Descriptor{Type: t}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// constructors returns the constructors of t in registration order. A type
// without registered constructors has a single implicit one which returns the
// zero value.
func (d *Descriptor) constructors(t reflect.Type) []*ctor {
	if d == nil || len(d.ctors) == 0 {
		return []*ctor{zeroCtor(t)}
	}
	return d.ctors
}

// explicitZero returns the registered parameterless constructor, if there is
// exactly one.
func (d *Descriptor) explicitZero() *ctor {
	if d == nil {
		return nil
	}
	var res *ctor
	for _, c := range d.ctors {
		if len(c.params) != 0 {
			continue
		}
		if res != nil {
			return nil
		}
		res = c
	}
	return res
}

func (d *Descriptor) property(name string) *property {
	if d == nil {
		return nil
	}
	for _, p := range d.props {
		if p.name == name {
			return p
		}
	}
	for _, p := range d.props {
		if strings.EqualFold(p.name, name) {
			return p
		}
	}
	return nil
}

var errorType = reflect.TypeFor[error]()

type ctor struct {
	fn     reflect.Value // invalid for the implicit constructor
	t      reflect.Type
	params []string
	in     []reflect.Type
	hasErr bool
}

func zeroCtor(t reflect.Type) *ctor {
	return &ctor{t: t}
}

func newCtor(t reflect.Type, fn any, params []string) (*ctor, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %s: constructor must be a function, got %T", ErrRegister, t, fn)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: %s: constructor %s is variadic", ErrRegister, t, ft)
	}
	if ft.NumIn() != len(params) {
		return nil, fmt.Errorf("%w: %s: constructor %s has %d parameters, %d names given", ErrRegister, t, ft, ft.NumIn(), len(params))
	}
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return nil, fmt.Errorf("%w: %s: constructor %s must return the type and optionally an error", ErrRegister, t, ft)
	}
	if out := ft.Out(0); out != t && out != reflect.PointerTo(t) {
		return nil, fmt.Errorf("%w: %s: constructor %s returns %s", ErrRegister, t, ft, out)
	}
	c := &ctor{
		fn:     fv,
		t:      t,
		params: params,
		hasErr: ft.NumOut() == 2,
	}
	for i := range ft.NumIn() {
		c.in = append(c.in, ft.In(i))
	}
	return c, nil
}

func (c *ctor) String() string {
	if !c.fn.IsValid() {
		return c.t.String() + "{}"
	}
	return fmt.Sprintf("%s(%s)", c.fn.Type(), strings.Join(c.params, ", "))
}

// call invokes the constructor, returning a value of type c.t or *c.t.
func (c *ctor) call(args []reflect.Value) (reflect.Value, error) {
	if !c.fn.IsValid() {
		return reflect.New(c.t).Elem(), nil
	}
	out := c.fn.Call(args)
	if c.hasErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}
	if out[0].Kind() == reflect.Pointer && out[0].IsNil() {
		return reflect.Value{}, fmt.Errorf("constructor %s returned nil", c)
	}
	return out[0], nil
}

type property struct {
	name      string
	typ       reflect.Type
	get, set  reflect.Value
	getPtr    bool
	setHasErr bool
}

func newProperty(t reflect.Type, name string, get, set any) (*property, error) {
	p := &property{name: name}
	if get == nil && set == nil {
		return nil, fmt.Errorf("%w: %s: property %q has neither getter nor setter", ErrRegister, t, name)
	}
	if get != nil {
		gv := reflect.ValueOf(get)
		gt := gv.Type()
		if gt.Kind() != reflect.Func || gt.NumIn() != 1 || gt.NumOut() != 1 {
			return nil, fmt.Errorf("%w: %s: getter for %q must be func(T) V, got %s", ErrRegister, t, name, gt)
		}
		switch gt.In(0) {
		case t:
		case reflect.PointerTo(t):
			p.getPtr = true
		default:
			return nil, fmt.Errorf("%w: %s: getter for %q takes %s", ErrRegister, t, name, gt.In(0))
		}
		p.get = gv
		p.typ = gt.Out(0)
	}
	if set != nil {
		sv := reflect.ValueOf(set)
		st := sv.Type()
		if st.Kind() != reflect.Func || st.NumIn() != 2 || st.In(0) != reflect.PointerTo(t) {
			return nil, fmt.Errorf("%w: %s: setter for %q must be func(*T, V), got %s", ErrRegister, t, name, st)
		}
		switch {
		case st.NumOut() == 0:
		case st.NumOut() == 1 && st.Out(0) == errorType:
			p.setHasErr = true
		default:
			return nil, fmt.Errorf("%w: %s: setter for %q returns %s", ErrRegister, t, name, st)
		}
		if p.typ != nil && p.typ != st.In(1) {
			return nil, fmt.Errorf("%w: %s: getter and setter for %q disagree on type: %s and %s", ErrRegister, t, name, p.typ, st.In(1))
		}
		p.set = sv
		p.typ = st.In(1)
	}
	return p, nil
}

// value returns the property of the struct v.
func (p *property) value(v reflect.Value) reflect.Value {
	if !p.getPtr {
		return p.get.Call([]reflect.Value{v})[0]
	}
	if !v.CanAddr() {
		cp := reflect.New(v.Type())
		cp.Elem().Set(v)
		v = cp.Elem()
	}
	return p.get.Call([]reflect.Value{v.Addr()})[0]
}

// assign sets the property of the addressable struct v to x.
func (p *property) assign(v, x reflect.Value) error {
	out := p.set.Call([]reflect.Value{v.Addr(), x})
	if p.setHasErr && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}
