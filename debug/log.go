package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
)

// Logf writes to stderr, printing *ir.Node arguments as wire text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			s, err := encode.ToText(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = s
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
