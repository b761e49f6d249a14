package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/polywire/ir"
)

// readJSON reads a single JSON document. Member order and the text of numbers
// are kept as written.
func readJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after value")
		}
		return nil, err
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(x.String()), nil
	case json.Delim:
		switch x {
		case '[':
			vals := []*ir.Node{}
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromSlice(vals), nil
		case '{':
			pairs := []*ir.Node{}
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				name, _ := ktok.(string)
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, ir.Pair(name, v))
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ir.FromPairs(pairs), nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// writeJSON writes node as indented JSON. Numbers are checked but written as
// they are held.
func writeJSON(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := jsonNode(buf, node, ""); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func jsonNode(buf *bytes.Buffer, node *ir.Node, indent string) error {
	switch node.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.TrueType:
		buf.WriteString("true")
	case ir.FalseType:
		buf.WriteString("false")
	case ir.NumberType:
		if _, err := number(node.Raw); err != nil || !json.Valid([]byte(node.Raw)) {
			return fmt.Errorf("invalid JSON number %q", node.Raw)
		}
		buf.WriteString(node.Raw)
	case ir.StringType:
		jsonString(buf, node.Unquoted())
	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString("[]")
			return nil
		}
		inner := indent + "  "
		buf.WriteString("[\n")
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteString(",\n")
			}
			buf.WriteString(inner)
			if err := jsonNode(buf, v, inner); err != nil {
				return err
			}
		}
		buf.WriteString("\n" + indent + "]")
	case ir.ObjectType:
		if len(node.Values) == 0 {
			buf.WriteString("{}")
			return nil
		}
		inner := indent + "  "
		buf.WriteString("{\n")
		i := 0
		for name, v := range node.Pairs() {
			if i > 0 {
				buf.WriteString(",\n")
			}
			i++
			buf.WriteString(inner)
			jsonString(buf, name)
			buf.WriteString(": ")
			if err := jsonNode(buf, v, inner); err != nil {
				return err
			}
		}
		buf.WriteString("\n" + indent + "}")
	default:
		return fmt.Errorf("cannot write %s as JSON", node.Type)
	}
	return nil
}

func jsonString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode cannot fail on a string; it appends a newline which is dropped.
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}
