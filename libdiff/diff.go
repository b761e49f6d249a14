package libdiff

import (
	"github.com/signadot/polywire/ir"
)

// Change is a difference at Path. From is nil for an insertion and To is nil
// for a deletion.
type Change struct {
	Path string
	From *ir.Node
	To   *ir.Node

	// Patch is set when both sides are multi line strings, and holds a
	// textual patch taking From to To.
	Patch string
}

func (c *Change) IsInsert() bool { return c.From == nil }
func (c *Change) IsDelete() bool { return c.To == nil }

// Diff returns the changes taking from to to, in document order. The result
// is empty if and only if ir.Equal(from, to).
func Diff(from, to *ir.Node) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to *ir.Node) []Change {
	if ir.Equal(from, to) {
		return dst
	}
	if from.Type != to.Type {
		return append(dst, Change{Path: path, From: from, To: to})
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(dst, path, from, to)
	case ir.ArrayType:
		return diffArray(dst, path, from, to)
	case ir.StringType:
		return append(dst, diffString(path, from, to))
	}
	return append(dst, Change{Path: path, From: from, To: to})
}

// Reverse returns the changes taking to back to from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		res[i] = Change{Path: c.Path, From: c.To, To: c.From}
		if c.Patch != "" {
			res[i] = diffString(c.Path, c.To, c.From)
		}
	}
	return res
}

// ToIR returns changes as an array of objects with members "path", and
// "from" and "to" where present.
func ToIR(changes []Change) *ir.Node {
	vals := make([]*ir.Node, len(changes))
	for i := range changes {
		c := &changes[i]
		kvs := []ir.KeyVal{{Key: "path", Val: ir.FromString(c.Path)}}
		if c.From != nil {
			kvs = append(kvs, ir.KeyVal{Key: "from", Val: c.From})
		}
		if c.To != nil {
			kvs = append(kvs, ir.KeyVal{Key: "to", Val: c.To})
		}
		if c.Patch != "" {
			kvs = append(kvs, ir.KeyVal{Key: "patch", Val: ir.FromString(c.Patch)})
		}
		vals[i] = ir.FromKeyVals(kvs)
	}
	return ir.FromSlice(vals)
}
