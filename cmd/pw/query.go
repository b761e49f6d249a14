package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/eval"
	"github.com/signadot/polywire/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var res []*ir.Node
	if err := eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) error {
		if !cfg.Filter {
			node, err := prg.Run(doc)
			if err != nil {
				return err
			}
			res = append(res, node)
			return nil
		}
		if doc.Type != ir.ArrayType {
			return fmt.Errorf("-filter needs an array, got %s", doc.Type)
		}
		kept := []*ir.Node{}
		for _, elt := range doc.Values {
			ok, err := prg.Match(elt)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, elt)
			}
		}
		theLog.Debug("filtered", "expr", prg.String(), "in", len(doc.Values), "out", len(kept))
		res = append(res, ir.FromSlice(kept))
		return nil
	}); err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, res...)
}
