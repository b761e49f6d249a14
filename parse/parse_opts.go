package parse

import (
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records in m the position of the first byte of every parsed
// node. The null, true and false singletons are shared and so are not recorded.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
