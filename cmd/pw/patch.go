package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/mergeop"
	"github.com/signadot/polywire/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Ops {
		fmt.Fprintf(cc.Out, "available patch operations:\n")
		for _, name := range mergeop.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	ops, err := mergeop.Parse(p)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var res []*ir.Node
	if err := eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) error {
		for _, op := range ops {
			theLog.Debug("applying", "op", op.String())
		}
		out, err := mergeop.Apply(doc, ops)
		if err != nil {
			return err
		}
		res = append(res, out)
		return nil
	}); err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, res...)
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if cfg.String {
		node, err := parse.ParseString(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return node, nil
	}
	return readDoc(cfg.MainConfig, cc, arg)
}
