package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/token"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, file := range args {
		docs, err := readDocs(cfg.MainConfig, cc, file)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok (%d documents)\n", file, len(docs))
			}
			continue
		}
		bad++
		var pe *token.ParseError
		if errors.As(err, &pe) && pe.Pos != nil {
			l, c := pe.Pos.LineCol()
			fmt.Fprintf(cc.Out, "%s:%d:%d: %v\n", file, l+1, c+1, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
