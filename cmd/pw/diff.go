package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	theLog.Debug("documents differ", "changes", len(changes))
	if err := writeDocs(cfg.MainConfig, cc.Out, libdiff.ToIR(changes)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
