package eval

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/gomap"
	"github.com/signadot/polywire/ir"
)

var ErrEval = errors.New("eval")

// Env is the environment of an expression.
type Env struct {
	Doc any `expr:"doc"`
}

// Program is a compiled expression, which may be run against any number of
// documents.
type Program struct {
	src string
}

func (p *Program) String() string { return p.src }

// Compile checks src.
func Compile(src string) (*Program, error) {
	if _, err := expr.Compile(src, exprOpts(nil)...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return &Program{src: src}, nil
}

// Run evaluates p with doc as its document.
func (p *Program) Run(doc *ir.Node) (*ir.Node, error) {
	res, err := p.run(doc)
	if err != nil {
		return nil, err
	}
	node, err := gomap.ToIR(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", p.src, node)
	}
	return node, nil
}

// Match evaluates p with doc as its document and reports whether the result
// is true: booleans are themselves, other values are true unless they are
// null, zero, empty strings or empty containers.
func (p *Program) Match(doc *ir.Node) (bool, error) {
	res, err := p.run(doc)
	if err != nil {
		return false, err
	}
	if b, ok := res.(bool); ok {
		return b, nil
	}
	node, err := gomap.ToIR(res)
	if err != nil {
		return false, fmt.Errorf("%w: result of %q: %w", ErrEval, p.src, err)
	}
	return ir.Truth(node), nil
}

func (p *Program) run(doc *ir.Node) (any, error) {
	v, err := Plain(doc)
	if err != nil {
		return nil, err
	}
	// functions close over the document, so the program is recompiled per
	// document with the same source
	prg, err := expr.Compile(p.src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, Env{Doc: v})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEval, p.src, err)
	}
	return res, nil
}

// Eval compiles and runs src with doc as its document.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(doc)
}

var anyType = reflect.TypeFor[any]()

// Plain converts node to plain Go values.
func Plain(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	v, err := gomap.FromIR(node, anyType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return v.Interface(), nil
}
