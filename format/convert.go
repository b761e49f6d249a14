package format

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/parse"
)

// Read parses d, which is in format f.
func Read(f Format, d []byte) (*ir.Node, error) {
	switch f {
	case WireFormat:
		return parse.Parse(d)
	case JSONFormat:
		node, err := readJSON(d)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		return node, nil
	case YAMLFormat:
		var v any
		if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		return FromNative(v)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Write writes node in format f. Encode options apply to wire output only.
func Write(f Format, node *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	switch f {
	case WireFormat:
		buf := &bytes.Buffer{}
		if err := encode.Encode(node, buf, opts...); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case JSONFormat:
		d, err := writeJSON(node)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", f, err)
		}
		return d, nil
	case YAMLFormat:
		v, err := ToNative(node)
		if err != nil {
			return nil, err
		}
		d, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", f, err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// FromNative converts a value decoded by goccy/go-yaml, with maps as
// yaml.MapSlice, to a node.
func FromNative(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x), 32), nil
	case float64:
		return ir.FromFloat(x, 64), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			node, err := FromNative(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		pairs := make([]*ir.Node, len(x))
		for i, item := range x {
			node, err := FromNative(item.Value)
			if err != nil {
				return nil, err
			}
			pairs[i] = ir.Pair(keyString(item.Key), node)
		}
		return ir.FromPairs(pairs), nil
	case map[string]any:
		kvs := make(yaml.MapSlice, 0, len(x))
		for k, v := range x {
			kvs = append(kvs, yaml.MapItem{Key: k, Value: v})
		}
		return FromNative(kvs)
	}
	return nil, fmt.Errorf("unsupported value %v of type %T", v, v)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// ToNative converts node to values goccy/go-yaml writes: objects become
// yaml.MapSlice and numbers int64, uint64 or float64.
func ToNative(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.TrueType, ir.FalseType:
		return node.Type == ir.TrueType, nil
	case ir.StringType:
		return node.Unquoted(), nil
	case ir.NumberType:
		return number(node.Raw)
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			x, err := ToNative(v)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Values))
		for name, v := range node.Pairs() {
			x, err := ToNative(v)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: name, Value: x})
		}
		return res, nil
	}
	return nil, fmt.Errorf("cannot convert %s", node.Type)
}

func number(raw string) (any, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return u, nil
	}
	f, err := ir.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", raw)
	}
	return f, nil
}
