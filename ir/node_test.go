package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSingletons(t *testing.T) {
	if Null() != Null() || True() != True() || False() != False() {
		t.Fatal("singletons are not shared")
	}
	if FromBool(true) != True() || FromBool(false) != False() {
		t.Error("FromBool does not return the singletons")
	}
}

func TestFromString(t *testing.T) {
	n := FromString("a\"b\n")
	if n.Raw != `"a\"b\n"` {
		t.Errorf("FromString().Raw = %s, want %s", n.Raw, `"a\"b\n"`)
	}
	if got := n.Unquoted(); got != "a\"b\n" {
		t.Errorf("Unquoted() = %q", got)
	}
}

func TestNumbersVerbatim(t *testing.T) {
	for _, raw := range []string{"1.50", "-0", "1e10", "0x10", "abc"} {
		if got := FromNumber(raw).Raw; got != raw {
			t.Errorf("FromNumber(%q).Raw = %q", raw, got)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		f    float64
		bits int
		want string
	}{
		{3.14159, 64, "3.14159"},
		{0, 64, "0"},
		{1e6, 64, "1000000"},
		{1e21, 64, "1e+21"},
		{1e-7, 64, "1e-7"},
		{-2.5, 64, "-2.5"},
		{0.1, 32, "0.1"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.f, tt.bits); got != tt.want {
			t.Errorf("FormatFloat(%v, %d) = %q, want %q", tt.f, tt.bits, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	obj := FromPairs([]*Node{
		Pair("Name", FromString("first")),
		Pair("name", FromString("second")),
		Pair("Name", FromString("third")),
	})
	tests := []struct {
		name string
		fold bool
		want string
	}{
		{"Name", false, "first"},
		{"name", false, "second"},
		{"NAME", true, "first"},
		{"name", true, "first"},
	}
	for _, tt := range tests {
		v, err := obj.Lookup(tt.name, tt.fold)
		if err != nil {
			t.Errorf("Lookup(%q, %v) error: %v", tt.name, tt.fold, err)
			continue
		}
		if got := v.Unquoted(); got != tt.want {
			t.Errorf("Lookup(%q, %v) = %q, want %q", tt.name, tt.fold, got, tt.want)
		}
	}
	_, err := obj.Lookup("missing", true)
	var le *LookupError
	if !errors.As(err, &le) || !errors.Is(err, ErrLookup) {
		t.Fatalf("Lookup(missing) error = %v, want *LookupError", err)
	}
	if le.Name != "missing" {
		t.Errorf("LookupError.Name = %q", le.Name)
	}
}

func TestPairs(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	var got []string
	for name, v := range obj.Pairs() {
		got = append(got, name+"="+v.Raw)
	}
	if diff := cmp.Diff([]string{"a=1", "b=2", "a=3"}, got); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, obj.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, err := ty.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != ty {
			t.Errorf("type %s came back as %s", ty, back)
		}
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{Null(), false},
		{True(), true},
		{False(), false},
		{FromInt(0), false},
		{FromNumber("0.5"), true},
		{FromString(""), false},
		{FromString("x"), true},
		{FromSlice(nil), false},
		{FromSlice([]*Node{Null()}), true},
		{FromPairs(nil), false},
	}
	for i, tt := range tests {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("%d: Truth(%s) = %v, want %v", i, tt.node.Type, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b *Node
		want int
	}{
		{Null(), Null(), 0},
		{Null(), False(), -1},
		{True(), False(), 1},
		{FromNumber("1"), FromNumber("1.0"), 0},
		{FromNumber("2"), FromNumber("10"), -1},
		{FromString("a"), FromString("b"), -1},
		{FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			0,
		},
		{
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1,
		},
	}
	for i, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("%d: Compare() = %d, want %d", i, got, tt.want)
		}
	}
}
