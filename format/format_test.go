package format

import (
	"errors"
	"testing"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/parse"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if f, _ := ParseFormat("y"); f != YAMLFormat {
		t.Errorf("y parsed to %s", f)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", JSONFormat},
		{"dir/a.yml", YAMLFormat},
		{"a.yaml", YAMLFormat},
		{"a.pw", WireFormat},
		{"-", WireFormat},
	}
	for _, tt := range tests {
		if got := FromPath(tt.path); got != tt.want {
			t.Errorf("FromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestReadYAML(t *testing.T) {
	node, err := Read(YAMLFormat, []byte("b: 1\na:\n  - x\n  - 2.5\n  - null\n  - true\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node)
	want := `{"b":1,"a":["x",2.5,null,true]}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestReadJSON(t *testing.T) {
	node, err := Read(JSONFormat, []byte(`{"z": {"k": "v"}, "a": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(node), `{"z":{"k":"v"},"a":[1,2]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	src := `{"name":"a\nb","n":-3,"f":0.25,"list":[true,null,{"q":"r"}],"empty":{}}`
	node, err := parse.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range AllFormats() {
		d, err := Write(f, node)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		back, err := Read(f, d)
		if err != nil {
			t.Fatalf("%s: %v\n%s", f, err, d)
		}
		if !ir.Equal(node, back) {
			t.Errorf("%s round trip:\n%s\ngot %s", f, d, encode.MustString(back))
		}
	}
}

func TestWriteBadNumber(t *testing.T) {
	if _, err := Write(YAMLFormat, ir.FromNumber("1x")); err == nil {
		t.Error("expected an error")
	}
}

func TestJSONKeepsText(t *testing.T) {
	src := `{"z":1.50,"a":"<b>&\u0001","big":18446744073709551616}`
	node, err := Read(JSONFormat, []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(node), "{\"z\":1.50,\"a\":\"<b>&\u0001\",\"big\":18446744073709551616}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	d, err := Write(JSONFormat, node)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"z\": 1.50,\n  \"a\": \"<b>&\\u0001\",\n  \"big\": 18446744073709551616\n}\n"
	if string(d) != want {
		t.Errorf("got\n%s\nwant\n%s", d, want)
	}
}

func TestReadJSONErrors(t *testing.T) {
	for _, src := range []string{`{"a":`, `[1,2] 3`, `{"a" 1}`} {
		if _, err := Read(JSONFormat, []byte(src)); err == nil {
			t.Errorf("%s: expected an error", src)
		}
	}
	if _, err := Write(JSONFormat, ir.FromNumber("NaN")); err == nil {
		t.Error("expected an error for NaN")
	}
}
