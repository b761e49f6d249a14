package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	multi := strings.Contains(path, "[*]") || strings.Contains(path, "..")
	var res []*ir.Node
	if err := eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) error {
		if multi {
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return err
			}
			res = append(res, ir.FromSlice(nodes))
			return nil
		}
		node, err := doc.GetPath(path)
		if err != nil {
			return err
		}
		if node == nil {
			theLog.Debug("no value", "path", path)
			node = ir.Null()
		}
		res = append(res, node)
		return nil
	}); err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, res...)
}
