package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var docs []*ir.Node
	if err := eachDoc(cfg.MainConfig, cc, args, func(doc *ir.Node) error {
		docs = append(docs, doc)
		return nil
	}); err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs...)
}
