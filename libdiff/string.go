package libdiff

import (
	"strings"

	"github.com/signadot/polywire/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffString(path string, from, to *ir.Node) Change {
	c := Change{Path: path, From: from, To: to}
	a, b := from.Unquoted(), to.Unquoted()
	if !strings.Contains(a, "\n") || !strings.Contains(b, "\n") {
		return c
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	c.Patch = dmp.PatchToText(dmp.PatchMake(a, diffs))
	return c
}

// ApplyPatch applies the textual patch of a multi line string change to s.
func ApplyPatch(s, patch string) (string, error) {
	dmp := diffpatch.New()
	patches, err := dmp.PatchFromText(patch)
	if err != nil {
		return "", err
	}
	res, ok := dmp.PatchApply(patches, s)
	for _, applied := range ok {
		if !applied {
			return res, ErrPatch
		}
	}
	return res, nil
}
