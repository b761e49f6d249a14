package mergeop

import (
	"sort"

	"github.com/signadot/polywire/ir"
)

// Symbol names an operation and instantiates it from its argument.
type Symbol interface {
	String() string
	Instance(child *ir.Node) (Op, error)
}

type patchName string

func (s patchName) String() string {
	return string(s)
}

var symbols = map[string]Symbol{}

func init() {
	for _, sym := range []Symbol{
		JSONPatch(),
		MergePatch(),
		StrDiff(),
		Eval(),
		Pipe(),
		Replace(),
	} {
		symbols[sym.String()] = sym
	}
}

// Lookup returns the symbol called name, or nil.
func Lookup(name string) Symbol {
	return symbols[name]
}

// Symbols returns the names of all operations, sorted.
func Symbols() []string {
	res := make([]string, 0, len(symbols))
	for name := range symbols {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
