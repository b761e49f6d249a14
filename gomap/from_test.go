package gomap

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signadot/polywire/ir"
)

func TestFromIRScalars(t *testing.T) {
	require.Equal(t, true, fromText[bool](t, "true"))
	require.Equal(t, "a\tb", fromText[string](t, `"a\tb"`))
	require.Equal(t, 3.14159, fromText[float64](t, "3.14159"))
	require.Equal(t, float32(0.5), fromText[float32](t, "0.5"))
	require.Equal(t, int32(-7), fromText[int32](t, "-7"))
	require.Equal(t, uint8(255), fromText[uint8](t, "255"))
	require.Equal(t, 1e21, fromText[float64](t, "1e+21"))
	require.True(t, fromText[float64](t, "-Infinity") < 0)
}

func TestFromIRNull(t *testing.T) {
	s := fromText[[]int](t, "[]")
	require.NotNil(t, s)
	require.Len(t, s, 0)

	require.Equal(t, [3]int{}, fromText[[3]int](t, "null"))
	require.Nil(t, fromText[*int](t, "null"))
	require.Nil(t, fromText[map[string]int](t, "null"))
	require.Nil(t, fromText[any](t, "null"))
	require.Equal(t, 0, fromText[int](t, "null"))

	type S struct {
		A int
	}
	require.Equal(t, S{}, fromText[S](t, "null"))
}

func TestFromIRArrays(t *testing.T) {
	require.Equal(t, []int{5, 3, 5}, fromText[[]int](t, "[5,3,5]"))
	require.Equal(t, [2]string{"a", "b"}, fromText[[2]string](t, `["a","b"]`))
	require.Equal(t, [3]int{1, 2, 0}, fromText[[3]int](t, "[1,2]"))
	require.Equal(t, [][]int{{1}, {}}, fromText[[][]int](t, "[[1],[ ]]"))

	_, err := tryFromText[[1]int]("[1,2]")
	require.ErrorIs(t, err, ErrConversion)
}

func TestFromIRMap(t *testing.T) {
	require.Equal(t, map[string]int{"a": 1, "b": 2}, fromText[map[string]int](t, `{"a":1,"b":2}`))

	type Key string
	require.Equal(t, map[Key]bool{"x": true}, fromText[map[Key]bool](t, `{"x":true}`))
}

func TestFromIRAny(t *testing.T) {
	got := fromText[any](t, `{"a":[1,"x",true,null],"b":{}}`)
	require.Equal(t, map[string]any{
		"a": []any{1.0, "x", true, nil},
		"b": map[string]any{},
	}, got)
	require.Equal(t, 2.5, fromText[any](t, "2.5"))
}

func TestFromIRStruct(t *testing.T) {
	type Address struct {
		City string
		Zip  int32 `wire:"zip"`
	}
	type Person struct {
		Name    string
		Age     int64
		Address *Address
		Tags    []string
	}
	got := fromText[Person](t, `{"name":"Ada","Age":36,"Address":{"City":"London","zip":1815},"Tags":["x"]}`)
	require.Equal(t, Person{
		Name:    "Ada",
		Age:     36,
		Address: &Address{City: "London", Zip: 1815},
		Tags:    []string{"x"},
	}, got)
}

func TestFromIRExactBeforeFold(t *testing.T) {
	type S struct {
		Id string
		ID string
	}
	got := fromText[S](t, `{"ID":"upper","Id":"mixed"}`)
	require.Equal(t, S{Id: "mixed", ID: "upper"}, got)
}

func TestFromIRConversionErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		typ  reflect.Type
		is   error
	}{
		{"string to int", `"abc"`, reflect.TypeFor[int](), nil},
		{"number to string", `12`, reflect.TypeFor[string](), nil},
		{"bool to int", `true`, reflect.TypeFor[int](), nil},
		{"array to struct", `[1]`, reflect.TypeFor[struct{ A int }](), nil},
		{"object to int", `{"a":1}`, reflect.TypeFor[int](), nil},
		{"overflow", `300`, reflect.TypeFor[int8](), strconv.ErrRange},
		{"fraction to int", `1.5`, reflect.TypeFor[int](), strconv.ErrSyntax},
		{"unvalidated number", `1x`, reflect.TypeFor[float64](), strconv.ErrSyntax},
		{"bad key type", `{"1":1}`, reflect.TypeFor[map[int]int](), nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			node := mustParse(t, tc.text)
			_, err := FromIR(node, tc.typ)
			require.ErrorIs(t, err, ErrConversion)
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
			}
			var ce *ConversionError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, node.Type, ce.From)
			require.Equal(t, tc.typ, ce.To)
		})
	}
}

func TestFromIRFieldPath(t *testing.T) {
	type Inner struct {
		N []int
	}
	type Outer struct {
		In Inner
	}
	_, err := tryFromText[Outer](`{"In":{"N":[1,"two"]}}`)
	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "In.N[1]", ce.FieldPath)
	require.Equal(t, ir.StringType, ce.From)
}

func TestFromIRInto(t *testing.T) {
	var n int
	require.NoError(t, FromIRInto(ir.FromInt(3), &n))
	require.Equal(t, 3, n)
	require.ErrorIs(t, FromIRInto(ir.FromInt(3), n), ErrUnsupported)
}
