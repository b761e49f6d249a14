package libdiff

import (
	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to by summary. Deletions and
// aligned elements are addressed by their index in from, insertions by their
// index in to. A deletion immediately followed by an insertion is reported as
// a single change.
func diffArray(dst []Change, path string, from, to *ir.Node) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			for k := range max(n, ins) {
				switch {
				case k < n && k < ins:
					dst = diff(dst, ir.JoinIndex(path, fi), from.Values[fi], to.Values[ti])
					fi++
					ti++
				case k < n:
					dst = append(dst, Change{Path: ir.JoinIndex(path, fi), From: from.Values[fi]})
					fi++
				default:
					dst = append(dst, Change{Path: ir.JoinIndex(path, ti), To: to.Values[ti]})
					ti++
				}
			}
		case diffpatch.DiffEqual:
			for range n {
				dst = diff(dst, ir.JoinIndex(path, fi), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				dst = append(dst, Change{Path: ir.JoinIndex(path, ti), To: to.Values[ti]})
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, arr *ir.Node) []rune {
	rs := make([]rune, len(arr.Values))
	for i, v := range arr.Values {
		rs[i] = runeFor(m, summary(v))
	}
	return rs
}

// summary is the type of containers and the canonical text of leaves, so
// containers of the same type align and are then compared member by member.
func summary(node *ir.Node) string {
	if !node.Type.IsLeaf() {
		return node.Type.String()
	}
	s, err := encode.ToText(node)
	if err != nil {
		return node.Type.String()
	}
	return node.Type.String() + "-" + s
}
