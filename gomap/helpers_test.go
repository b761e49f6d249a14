package gomap

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/parse"
)

func toText(t *testing.T, v any, opts ...MapOption) string {
	t.Helper()
	node, err := ToIR(v, opts...)
	require.NoError(t, err)
	return encode.MustString(node)
}

func fromText[T any](t *testing.T, text string, opts ...UnmapOption) T {
	t.Helper()
	res, err := tryFromText[T](text, opts...)
	require.NoError(t, err)
	return res
}

func tryFromText[T any](text string, opts ...UnmapOption) (T, error) {
	var res T
	node, err := parse.ParseString(text)
	if err != nil {
		return res, err
	}
	err = FromIRInto(node, &res, opts...)
	return res, err
}

func mustParse(t *testing.T, text string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(text)
	require.NoError(t, err)
	return node
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
