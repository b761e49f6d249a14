// Package debug holds switches, read from the environment at startup, which
// turn on tracing to stderr.
//
//	POLYWIRE_DEBUG_PARSE     trace parsing
//	POLYWIRE_DEBUG_CONVERT   trace conversion between Go values and nodes
//	POLYWIRE_DEBUG_REGISTRY  trace type registration and resolution
//	POLYWIRE_DEBUG_EVAL      trace expression evaluation in pw
//	POLYWIRE_DEBUG_OP        trace patch operations
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Convert  bool
	Registry bool
	Eval     bool
	Op       bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("POLYWIRE_DEBUG_PARSE")
	d.Convert = boolEnv("POLYWIRE_DEBUG_CONVERT")
	d.Registry = boolEnv("POLYWIRE_DEBUG_REGISTRY")
	d.Eval = boolEnv("POLYWIRE_DEBUG_EVAL")
	d.Op = boolEnv("POLYWIRE_DEBUG_OP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}
func Registry() bool {
	return d.Registry
}
func Eval() bool {
	return d.Eval
}
func Op() bool {
	return d.Op
}

