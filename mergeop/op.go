package mergeop

import (
	"errors"
	"fmt"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/ir"
)

var ErrOp = errors.New("patch op")

type Op interface {
	Patch(doc *ir.Node) (*ir.Node, error)
	String() string
}

type op struct {
	name  patchName
	child *ir.Node
}

func (o op) String() string {
	return o.name.String()
}

// Parse reads the operations of a patch document.
func Parse(patch *ir.Node) ([]Op, error) {
	switch patch.Type {
	case ir.ObjectType:
		o, err := parseOp(patch)
		if err != nil {
			return nil, err
		}
		return []Op{o}, nil
	case ir.ArrayType:
		res := make([]Op, 0, len(patch.Values))
		for i, v := range patch.Values {
			if v.Type != ir.ObjectType {
				return nil, fmt.Errorf("%w: element %d: expected an object, got %s", ErrOp, i, v.Type)
			}
			o, err := parseOp(v)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res = append(res, o)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: expected an object or array, got %s", ErrOp, patch.Type)
}

func parseOp(obj *ir.Node) (Op, error) {
	if len(obj.Values) != 1 {
		return nil, fmt.Errorf("%w: an operation has exactly one member, got %d", ErrOp, len(obj.Values))
	}
	for name, child := range obj.Pairs() {
		sym := Lookup(name)
		if sym == nil {
			return nil, fmt.Errorf("%w: unknown operation %q", ErrOp, name)
		}
		return sym.Instance(child)
	}
	panic("unreachable")
}

// Apply applies ops to doc in order.
func Apply(doc *ir.Node, ops []Op) (*ir.Node, error) {
	for _, o := range ops {
		res, err := o.Patch(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o, err)
		}
		if debug.Op() {
			debug.Logf("patch op %s -> %v\n", o, res)
		}
		doc = res
	}
	return doc, nil
}

// Patch parses patch and applies it to doc.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	ops, err := Parse(patch)
	if err != nil {
		return nil, err
	}
	return Apply(doc, ops)
}

var replaceSym = &replaceSymbol{patchName: "replace"}

func Replace() Symbol {
	return replaceSym
}

type replaceSymbol struct {
	patchName
}

func (s replaceSymbol) Instance(child *ir.Node) (Op, error) {
	return &replaceOp{op: op{name: s.patchName, child: child}}, nil
}

type replaceOp struct {
	op
}

func (r replaceOp) Patch(_ *ir.Node) (*ir.Node, error) {
	return r.child, nil
}
