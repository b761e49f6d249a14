package libdiff

import (
	"github.com/signadot/polywire/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffObject aligns the member names of from and to, recursing on members
// present in both.
func diffObject(dst []Change, path string, from, to *ir.Node) []Change {
	fieldMap := map[string]rune{}
	fromRunes := mapFields(fieldMap, from)
	toRunes := mapFields(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				p := from.Values[fi]
				dst = append(dst, Change{Path: ir.JoinField(path, p.Name.Unquoted()), From: p.Value})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				p := from.Values[fi]
				dst = diff(dst, ir.JoinField(path, p.Name.Unquoted()), p.Value, to.Values[ti].Value)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				p := to.Values[ti]
				dst = append(dst, Change{Path: ir.JoinField(path, p.Name.Unquoted()), To: p.Value})
				ti++
			}
		}
	}
	return dst
}

func mapFields(m map[string]rune, obj *ir.Node) []rune {
	rs := make([]rune, len(obj.Values))
	for i, p := range obj.Values {
		rs[i] = runeFor(m, p.Name.Unquoted())
	}
	return rs
}

// runeFor gives each distinct key its own rune, skipping the surrogate range
// which does not survive conversion to a string.
func runeFor(m map[string]rune, key string) rune {
	r, ok := m[key]
	if !ok {
		r = rune(len(m)) + 1
		if r >= 0xD800 {
			r += 0x800
		}
		m[key] = r
	}
	return r
}
