package eval

import (
	"errors"
	"testing"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/parse"
)

const doc = `{"name":"web","spec":{"replicas":3,"ports":[80,443]},"items":[{"n":"a"},{"n":"b"}],"a.b":"dotted"}`

func TestEval(t *testing.T) {
	node, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want string
	}{
		{`doc.name`, `"web"`},
		{`doc.spec.replicas * 2`, `6`},
		{`len(doc.spec.ports)`, `2`},
		{`doc.spec.ports[1]`, `443`},
		{`getpath("$.'a.b'")`, `"dotted"`},
		{`listpath("$.items[*].n")`, `["a","b"]`},
		{`text(doc.spec)`, `"{\"ports\":[80,443],\"replicas\":3}"`},
		{`doc.missing ?? "none"`, `"none"`},
		{`{"k": doc.name}`, `{"k":"web"}`},
	}
	for _, tt := range tests {
		got, err := Eval(node, tt.src)
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tt.src, err)
			continue
		}
		if s := encode.MustString(got); s != tt.want {
			t.Errorf("Eval(%q) = %s, want %s", tt.src, s, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	node, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want bool
	}{
		{`doc.spec.replicas > 2`, true},
		{`doc.name == "api"`, false},
		{`doc.spec.ports`, true},
		{`doc.missing`, false},
		{`""`, false},
	}
	for _, tt := range tests {
		p, err := Compile(tt.src)
		if err != nil {
			t.Fatal(err)
		}
		got, err := p.Match(node)
		if err != nil {
			t.Errorf("Match(%q) error: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`doc.name ==`); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
}
