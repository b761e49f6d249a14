package mergeop

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/libdiff"
	"github.com/signadot/polywire/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestPatch(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "json-patch",
			doc:   `{"a":1,"b":[1,2]}`,
			patch: `{"json-patch":[{"op":"replace","path":"/a","value":2},{"op":"add","path":"/b/-","value":3}]}`,
			want:  `{"a":2,"b":[1,2,3]}`,
		},
		{
			name:  "merge-patch",
			doc:   `{"a":1,"c":{"d":1}}`,
			patch: `{"merge-patch":{"c":{"d":null,"e":"x"}}}`,
			want:  `{"a":1,"c":{"e":"x"}}`,
		},
		{
			name:  "eval",
			doc:   `{"n":1}`,
			patch: `{"eval":"doc.n + 1"}`,
			want:  `2`,
		},
		{
			name:  "replace",
			doc:   `{"n":1}`,
			patch: `{"replace":[true]}`,
			want:  `[true]`,
		},
		{
			name:  "sequence",
			doc:   `{"n":1}`,
			patch: `[{"json-patch":[{"op":"add","path":"/m","value":"x"}]},{"eval":"doc.m"}]`,
			want:  `"x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(mustParse(t, tt.doc), mustParse(t, tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			if s := encode.MustString(got); s != tt.want {
				t.Errorf("got %s, want %s", s, tt.want)
			}
		})
	}
}

func TestStrDiff(t *testing.T) {
	from := ir.FromString("one\ntwo\nthree\n")
	to := ir.FromString("one\n2\nthree\n")
	changes := libdiff.Diff(from, to)
	if len(changes) != 1 || changes[0].Patch == "" {
		t.Fatalf("expected one textual change, got %v", changes)
	}
	patch := ir.FromPairs([]*ir.Node{ir.Pair("strdiff", ir.FromString(changes[0].Patch))})
	got, err := Patch(from, patch)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, to) {
		t.Errorf("got %s", encode.MustString(got))
	}
	if _, err := Patch(ir.FromInt(1), patch); !errors.Is(err, ErrOp) {
		t.Errorf("got %v", err)
	}
}

func TestPipe(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("no cat")
	}
	doc := mustParse(t, `{"a":[1,"b"]}`)
	got, err := Patch(doc, mustParse(t, `{"pipe":"cat"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, doc) {
		t.Errorf("got %s", encode.MustString(got))
	}
}

func TestParseErrors(t *testing.T) {
	for _, patch := range []string{
		`{"nope":1}`,
		`{"eval":"doc","replace":1}`,
		`{"json-patch":{}}`,
		`{"pipe":""}`,
		`[1]`,
		`"eval"`,
	} {
		if _, err := Parse(mustParse(t, patch)); !errors.Is(err, ErrOp) {
			t.Errorf("%s: got %v", patch, err)
		}
	}
}

func TestSymbols(t *testing.T) {
	names := Symbols()
	if len(names) != 6 {
		t.Fatalf("got %v", names)
	}
	for _, name := range names {
		if Lookup(name) == nil {
			t.Errorf("no symbol %s", name)
		}
	}
}
