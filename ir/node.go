package ir

import (
	"iter"
	"strconv"
	"strings"

	"github.com/signadot/polywire/token"
)

// Node is a value of the wire format. See the package documentation for which
// fields are used by which Type.
type Node struct {
	Type Type `json:"type"`

	Raw string `json:"raw,omitempty"`

	Name  *Node `json:"name,omitempty"`
	Value *Node `json:"value,omitempty"`

	Values []*Node `json:"values,omitempty"`
}

var (
	nullNode  = &Node{Type: NullType}
	trueNode  = &Node{Type: TrueType}
	falseNode = &Node{Type: FalseType}
)

func Null() *Node  { return nullNode }
func True() *Node  { return trueNode }
func False() *Node { return falseNode }

func FromBool(b bool) *Node {
	if b {
		return trueNode
	}
	return falseNode
}

// FromNumber creates a number node holding raw verbatim.
func FromNumber(raw string) *Node {
	return &Node{Type: NumberType, Raw: raw}
}

func FromInt(v int64) *Node {
	return FromNumber(strconv.FormatInt(v, 10))
}

func FromUint(v uint64) *Node {
	return FromNumber(strconv.FormatUint(v, 10))
}

// FromFloat creates a number node for f, which has the given bit size (32 or 64).
func FromFloat(f float64, bitSize int) *Node {
	return FromNumber(FormatFloat(f, bitSize))
}

// FromString creates a string node whose content is v.
func FromString(v string) *Node {
	return &Node{Type: StringType, Raw: token.Quote(v)}
}

// FromQuoted creates a string node from raw quoted text, which is kept as is.
func FromQuoted(raw string) *Node {
	return &Node{Type: StringType, Raw: raw}
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Type: ArrayType, Values: vs}
}

// FromPair creates a name value pair. name should be a string node.
func FromPair(name, v *Node) *Node {
	return &Node{Type: NameValueType, Name: name, Value: v}
}

// Pair creates a name value pair with the name content given by name.
func Pair(name string, v *Node) *Node {
	return FromPair(FromString(name), v)
}

// FromPairs creates an object from name value pairs, keeping their order.
func FromPairs(pairs []*Node) *Node {
	if pairs == nil {
		pairs = []*Node{}
	}
	return &Node{Type: ObjectType, Values: pairs}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	pairs := make([]*Node, len(kvs))
	for i := range kvs {
		pairs[i] = Pair(kvs[i].Key, kvs[i].Val)
	}
	return FromPairs(pairs)
}

// Unquoted returns the content of a string node. For a name value pair it
// returns the content of the name.
func (n *Node) Unquoted() string {
	switch n.Type {
	case StringType:
		return token.Unquote(n.Raw)
	case NameValueType:
		return n.Name.Unquoted()
	}
	return n.Raw
}

// Pairs iterates over the names and values of an object.
func (n *Node) Pairs() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if n.Type != ObjectType {
			return
		}
		for _, p := range n.Values {
			if !yield(p.Name.Unquoted(), p.Value) {
				return
			}
		}
	}
}

// Lookup returns the value of the first pair of object n named name. If fold is
// true, names are compared case insensitively.
func (n *Node) Lookup(name string, fold bool) (*Node, error) {
	p, err := n.LookupPair(name, fold)
	if err != nil {
		return nil, err
	}
	return p.Value, nil
}

// LookupPair is like Lookup but returns the pair.
func (n *Node) LookupPair(name string, fold bool) (*Node, error) {
	if n.Type == ObjectType {
		for _, p := range n.Values {
			pn := p.Name.Unquoted()
			if pn == name || (fold && strings.EqualFold(pn, name)) {
				return p, nil
			}
		}
	}
	return nil, &LookupError{Name: name, Fold: fold}
}

// Names returns the names of the pairs of an object in order.
func (n *Node) Names() []string {
	if n.Type != ObjectType {
		return nil
	}
	res := make([]string, len(n.Values))
	for i, p := range n.Values {
		res[i] = p.Name.Unquoted()
	}
	return res
}
