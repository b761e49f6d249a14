package mergeop

import (
	"fmt"

	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/libdiff"
)

var strDiffSym = &strDiffSymbol{patchName: "strdiff"}

func StrDiff() Symbol {
	return strDiffSym
}

type strDiffSymbol struct {
	patchName
}

func (s strDiffSymbol) Instance(child *ir.Node) (Op, error) {
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %s expects a string, got %s", ErrOp, s, child.Type)
	}
	return &strDiffOp{op: op{name: s.patchName, child: child}}, nil
}

type strDiffOp struct {
	op
}

func (sd strDiffOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if doc.Type != ir.StringType {
		return nil, fmt.Errorf("%w: strdiff only applies to strings, got %s", ErrOp, doc.Type)
	}
	res, err := libdiff.ApplyPatch(doc.Unquoted(), sd.child.Unquoted())
	if err != nil {
		return nil, err
	}
	return ir.FromString(res), nil
}
