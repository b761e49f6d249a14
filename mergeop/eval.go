package mergeop

import (
	"fmt"

	"github.com/signadot/polywire/eval"
	"github.com/signadot/polywire/ir"
)

var evalSym = &evalSymbol{patchName: "eval"}

func Eval() Symbol {
	return evalSym
}

type evalSymbol struct {
	patchName
}

func (s evalSymbol) Instance(child *ir.Node) (Op, error) {
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %s expects an expression string, got %s", ErrOp, s, child.Type)
	}
	prg, err := eval.Compile(child.Unquoted())
	if err != nil {
		return nil, err
	}
	return &evalOp{prg: prg, op: op{name: s.patchName, child: child}}, nil
}

type evalOp struct {
	op
	prg *eval.Program
}

func (e evalOp) Patch(doc *ir.Node) (*ir.Node, error) {
	return e.prg.Run(doc)
}
