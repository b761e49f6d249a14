package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/parse"
)

type change struct {
	Path, From, To string
}

func flatten(cs []Change) []change {
	res := make([]change, len(cs))
	for i, c := range cs {
		res[i].Path = c.Path
		if c.From != nil {
			res[i].From = encode.MustString(c.From)
		}
		if c.To != nil {
			res[i].To = encode.MustString(c.To)
		}
	}
	return res
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []change
	}{
		{
			name: "equal",
			from: `{"a":[1,2],"b":"x"}`,
			to:   `{"a":[1,2.0],"b":"x"}`,
		},
		{
			name: "leaf",
			from: `{"a":1}`,
			to:   `{"a":2}`,
			want: []change{{"$.a", "1", "2"}},
		},
		{
			name: "type change",
			from: `{"a":1}`,
			to:   `{"a":"1"}`,
			want: []change{{"$.a", "1", `"1"`}},
		},
		{
			name: "members",
			from: `{"a":1,"b":2,"c":3}`,
			to:   `{"a":1,"c":3,"d":4}`,
			want: []change{{"$.b", "2", ""}, {"$.d", "", "4"}},
		},
		{
			name: "nested",
			from: `{"x":{"y":[true,{"z":null}]}}`,
			to:   `{"x":{"y":[true,{"z":false}]}}`,
			want: []change{{"$.x.y[1].z", "null", "false"}},
		},
		{
			name: "array insert front",
			from: `[1,2,3]`,
			to:   `[0,1,2,3]`,
			want: []change{{"$[0]", "", "0"}},
		},
		{
			name: "array delete",
			from: `[1,2,3]`,
			to:   `[1,3]`,
			want: []change{{"$[1]", "2", ""}},
		},
		{
			name: "array replace",
			from: `[1,2,3]`,
			to:   `[1,5,3]`,
			want: []change{{"$[1]", "2", "5"}},
		},
		{
			name: "quoted field",
			from: `{"a.b":1}`,
			to:   `{"a.b":2}`,
			want: []change{{"$.'a.b'", "1", "2"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flatten(Diff(mustParse(t, tt.from), mustParse(t, tt.to)))
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	cs := Diff(mustParse(t, `{"a":1,"b":2}`), mustParse(t, `{"a":3}`))
	got := flatten(Reverse(cs))
	want := []change{{"$.a", "3", "1"}, {"$.b", "", "2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiLineString(t *testing.T) {
	from := ir.FromString("one\ntwo\nthree\n")
	to := ir.FromString("one\n2\nthree\n")
	cs := Diff(from, to)
	if len(cs) != 1 || cs[0].Patch == "" {
		t.Fatalf("got %+v", cs)
	}
	res, err := ApplyPatch(from.Unquoted(), cs[0].Patch)
	if err != nil {
		t.Fatal(err)
	}
	if res != to.Unquoted() {
		t.Errorf("ApplyPatch() = %q", res)
	}
	back, err := ApplyPatch(to.Unquoted(), Reverse(cs)[0].Patch)
	if err != nil {
		t.Fatal(err)
	}
	if back != from.Unquoted() {
		t.Errorf("reverse ApplyPatch() = %q", back)
	}
}

func TestToIR(t *testing.T) {
	cs := Diff(mustParse(t, `{"a":1}`), mustParse(t, `{"b":2}`))
	got := encode.MustString(ToIR(cs))
	want := `[{"path":"$.a","from":1},{"path":"$.b","to":2}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
