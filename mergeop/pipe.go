package mergeop

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/parse"
)

var pipeSym = &pipeSymbol{patchName: "pipe"}

func Pipe() Symbol {
	return pipeSym
}

type pipeSymbol struct {
	patchName
}

func (s pipeSymbol) Instance(child *ir.Node) (Op, error) {
	if child.Type != ir.StringType {
		return nil, fmt.Errorf("%w: %s expects a command string, got %s", ErrOp, s, child.Type)
	}
	fields := strings.Fields(child.Unquoted())
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no command to pipe to", ErrOp)
	}
	return &pipeOp{args: fields, op: op{name: s.patchName, child: child}}, nil
}

type pipeOp struct {
	op
	args []string
}

func (p pipeOp) Patch(doc *ir.Node) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("patch op pipe %q\n", p.args)
	}
	in := &bytes.Buffer{}
	if err := encode.Encode(doc, in); err != nil {
		return nil, err
	}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := exec.Command(p.args[0], p.args[1:]...)
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", p.args[0], err, strings.TrimSpace(errOut.String()))
	}
	return parse.Parse(out.Bytes())
}
