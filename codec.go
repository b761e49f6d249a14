package polywire

import (
	"bytes"
	"log/slog"
	"reflect"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/gomap"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/parse"
)

// Codec converts between Go values and text with a fixed registry, logger and
// printing options.
type Codec struct {
	registry *gomap.Registry
	logger   *slog.Logger
	tag      string
	encOpts  []encode.EncodeOption
}

type Option func(*Codec)

// WithRegistry resolves and records type identifiers in r in place of
// gomap.DefaultRegistry().
func WithRegistry(r *gomap.Registry) Option {
	return func(c *Codec) { c.registry = r }
}

// WithLogger sets the logger. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) { c.logger = l }
}

// WithTag sets the struct tag giving member names, "wire" by default.
func WithTag(tag string) Option {
	return func(c *Codec) { c.tag = tag }
}

// WithEncodeOptions passes opts to the printer. Text printed with indentation
// or colors is for people; it still parses but is not canonical.
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(c *Codec) { c.encOpts = append(c.encOpts, opts...) }
}

func New(opts ...Option) *Codec {
	c := &Codec{tag: "wire"}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = gomap.DefaultRegistry()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func (c *Codec) Registry() *gomap.Registry {
	return c.registry
}

func (c *Codec) gomapOpts() []gomap.Option {
	return []gomap.Option{
		gomap.WithRegistry(c.registry),
		gomap.WithLogger(c.logger),
		gomap.WithTag(c.tag),
	}
}

// ToIR converts v, declared with type declared, to a node. A nil declared
// type means the dynamic type of v.
func (c *Codec) ToIR(v any, declared reflect.Type) (*ir.Node, error) {
	return c.toIR(reflect.ValueOf(v), declared)
}

func (c *Codec) toIR(val reflect.Value, declared reflect.Type) (*ir.Node, error) {
	var opts []gomap.MapOption
	for _, o := range c.gomapOpts() {
		opts = append(opts, o)
	}
	return gomap.ToIRValue(val, declared, opts...)
}

// FromIR converts node to a value of type declared.
func (c *Codec) FromIR(node *ir.Node, declared reflect.Type) (reflect.Value, error) {
	var opts []gomap.UnmapOption
	for _, o := range c.gomapOpts() {
		opts = append(opts, o)
	}
	return gomap.FromIR(node, declared, opts...)
}

// Marshal writes v as text. declared is the type v is known by to its reader;
// if it is an interface type, the text carries the runtime type of v.
func (c *Codec) Marshal(v any, declared reflect.Type) ([]byte, error) {
	return c.marshal(reflect.ValueOf(v), declared)
}

func (c *Codec) marshal(val reflect.Value, declared reflect.Type) ([]byte, error) {
	node, err := c.toIR(val, declared)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, c.encOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal reads text into a new value of type declared.
func (c *Codec) Unmarshal(d []byte, declared reflect.Type) (any, error) {
	v, err := c.unmarshal(d, declared)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func (c *Codec) unmarshal(d []byte, declared reflect.Type) (reflect.Value, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return reflect.Value{}, err
	}
	return c.FromIR(node, declared)
}

// SerializeWith writes v as text using c, with T as the declared type.
func SerializeWith[T any](c *Codec, v T) (string, error) {
	d, err := c.marshal(reflect.ValueOf(&v).Elem(), reflect.TypeFor[T]())
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// DeserializeWith reads text into a T using c.
func DeserializeWith[T any](c *Codec, text string) (T, error) {
	var res T
	v, err := c.unmarshal([]byte(text), reflect.TypeFor[T]())
	if err != nil {
		return res, err
	}
	reflect.ValueOf(&res).Elem().Set(v)
	return res, nil
}

// Serialize writes v as text, with T as the declared type.
func Serialize[T any](v T, opts ...Option) (string, error) {
	return SerializeWith(New(opts...), v)
}

// Deserialize reads text into a T.
func Deserialize[T any](text string, opts ...Option) (T, error) {
	return DeserializeWith[T](New(opts...), text)
}
