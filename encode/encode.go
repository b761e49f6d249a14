package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/polywire/ir"
)

var ErrEncode = errors.New("encode")

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string

	indent string
	depth  int
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	d, err := appendNode(nil, node, es)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// AppendText appends the canonical text of node to dst.
func AppendText(dst []byte, node *ir.Node) ([]byte, error) {
	return appendNode(dst, node, &EncState{})
}

// ToText returns the canonical text of node.
func ToText(node *ir.Node) (string, error) {
	d, err := AppendText(nil, node)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func appendNode(d []byte, node *ir.Node, es *EncState) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncode)
	}
	switch node.Type {
	case ir.NullType:
		return appendColor(d, es, node.Type, ValueColor, "null"), nil
	case ir.TrueType:
		return appendColor(d, es, node.Type, ValueColor, "true"), nil
	case ir.FalseType:
		return appendColor(d, es, node.Type, ValueColor, "false"), nil
	case ir.NumberType, ir.StringType:
		return appendColor(d, es, node.Type, ValueColor, node.Raw), nil
	case ir.ObjectType:
		return encodeObject(d, node, es)
	case ir.ArrayType:
		return encodeArray(d, node, es)
	case ir.NameValueType:
		return encodePair(d, node, es)
	default:
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncode, node.Type)
	}
}

func encodeObject(d []byte, node *ir.Node, es *EncState) ([]byte, error) {
	var err error
	d = appendColor(d, es, ir.ObjectType, SepColor, "{")
	es.depth++
	for i, p := range node.Values {
		if p == nil || p.Type != ir.NameValueType {
			return nil, fmt.Errorf("%w: object member %d is not a name value pair", ErrEncode, i)
		}
		if i > 0 {
			d = appendColor(d, es, ir.ObjectType, SepColor, ",")
		}
		d = appendNL(d, es)
		d, err = encodePair(d, p, es)
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		d = appendNL(d, es)
	}
	return appendColor(d, es, ir.ObjectType, SepColor, "}"), nil
}

func encodePair(d []byte, p *ir.Node, es *EncState) ([]byte, error) {
	if p.Name == nil || p.Name.Type != ir.StringType {
		return nil, fmt.Errorf("%w: name value pair without string name", ErrEncode)
	}
	if p.Value == nil {
		return nil, fmt.Errorf("%w: name value pair %s without value", ErrEncode, p.Name.Raw)
	}
	d = appendColor(d, es, ir.ObjectType, FieldColor, p.Name.Raw)
	d = appendColor(d, es, ir.ObjectType, SepColor, ":")
	if es.indent != "" {
		d = append(d, ' ')
	}
	return appendNode(d, p.Value, es)
}

func encodeArray(d []byte, node *ir.Node, es *EncState) ([]byte, error) {
	var err error
	d = appendColor(d, es, ir.ArrayType, SepColor, "[")
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			d = appendColor(d, es, ir.ArrayType, SepColor, ",")
		}
		d = appendNL(d, es)
		d, err = appendNode(d, v, es)
		if err != nil {
			return nil, err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		d = appendNL(d, es)
	}
	return appendColor(d, es, ir.ArrayType, SepColor, "]"), nil
}

func appendNL(d []byte, es *EncState) []byte {
	if es.indent == "" {
		return d
	}
	d = append(d, '\n')
	return append(d, strings.Repeat(es.indent, es.depth)...)
}

func appendColor(d []byte, es *EncState, t ir.Type, attr ColorAttr, v string) []byte {
	if es.Color == nil {
		return append(d, v...)
	}
	return append(d, es.Color(t, attr, v)...)
}
