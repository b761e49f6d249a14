package mergeop

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/format"
	"github.com/signadot/polywire/ir"
)

var jPatchSym = &jPatchSymbol{patchName: "json-patch"}

func JSONPatch() Symbol {
	return jPatchSym
}

type jPatchSymbol struct {
	patchName
}

func (s jPatchSymbol) Instance(child *ir.Node) (Op, error) {
	if child.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: %s expects an array, got %s", ErrOp, s, child.Type)
	}
	d, err := format.Write(format.JSONFormat, child)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOp, err)
	}
	return &jPatchOp{ops: ops, op: op{name: s.patchName, child: child}}, nil
}

type jPatchOp struct {
	op
	ops jsonpatch.Patch
}

func (jp jPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("json-patch op called with %d operations\n", len(jp.ops))
	}
	d, err := format.Write(format.JSONFormat, doc)
	if err != nil {
		return nil, err
	}
	out, err := jp.ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return format.Read(format.JSONFormat, out)
}

var mPatchSym = &mPatchSymbol{patchName: "merge-patch"}

func MergePatch() Symbol {
	return mPatchSym
}

type mPatchSymbol struct {
	patchName
}

func (s mPatchSymbol) Instance(child *ir.Node) (Op, error) {
	d, err := format.Write(format.JSONFormat, child)
	if err != nil {
		return nil, err
	}
	return &mPatchOp{patch: d, op: op{name: s.patchName, child: child}}, nil
}

type mPatchOp struct {
	op
	patch []byte
}

func (mp mPatchOp) Patch(doc *ir.Node) (*ir.Node, error) {
	d, err := format.Write(format.JSONFormat, doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return nil, err
	}
	return format.Read(format.JSONFormat, out)
}
