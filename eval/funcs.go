package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/gomap"
	"github.com/signadot/polywire/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	if doc == nil {
		doc = ir.Null()
	}
	return []expr.Option{
		expr.Env(Env{}),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return Plain(res)
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			nodes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, node := range nodes {
				if res[i], err = Plain(node); err != nil {
					return nil, err
				}
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("text", func(params ...any) (any, error) {
			node, err := gomap.ToIR(params[0])
			if err != nil {
				return nil, fmt.Errorf("text: %w", err)
			}
			return encode.ToText(node)
		},
			new(func(any) string)),
	}
}
