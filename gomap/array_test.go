package gomap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayRank(t *testing.T) {
	require.Equal(t, 1, arrayRank(typeOf[[]int]()))
	require.Equal(t, 1, arrayRank(typeOf[[][2]int]()))
	require.Equal(t, 1, arrayRank(typeOf[[3]int]()))
	require.Equal(t, 2, arrayRank(typeOf[[2][3]int]()))
	require.Equal(t, 3, arrayRank(typeOf[[2][3][4]int]()))
	require.Equal(t, 1, arrayRank(typeOf[[2][]int]()))
	require.Equal(t, 0, arrayRank(typeOf[int]()))
}

func TestMatrixRoundTrip(t *testing.T) {
	m := [2][2]int{{1, 2}, {3, 4}}
	text := toText(t, m)
	require.Equal(t, "[[2,2],[1,2,3,4]]", text)
	require.Equal(t, m, fromText[[2][2]int](t, text))
}

func TestCubeRowMajor(t *testing.T) {
	var c [2][3][2]int
	n := 0
	for i := range c {
		for j := range c[i] {
			for k := range c[i][j] {
				c[i][j][k] = n
				n++
			}
		}
	}
	text := toText(t, c)
	require.Equal(t, "[[2,3,2],[0,1,2,3,4,5,6,7,8,9,10,11]]", text)
	require.Equal(t, c, fromText[[2][3][2]int](t, text))
}

func TestEmptyMatrix(t *testing.T) {
	var m [2][0]string
	text := toText(t, m)
	require.Equal(t, "[[2,0],[]]", text)
	require.Equal(t, m, fromText[[2][0]string](t, text))
}

func TestMatrixErrors(t *testing.T) {
	for _, text := range []string{
		"[1,2,3,4]",
		"[[2,2],[1,2,3]]",
		"[[2,3],[1,2,3,4,5,6]]",
		"[[2],[1,2,3,4]]",
		`[["2",2],[1,2,3,4]]`,
		"[[2,2],5]",
	} {
		_, err := tryFromText[[2][2]int](text)
		require.ErrorIs(t, err, ErrConversion, text)
	}
}

func TestMatrixField(t *testing.T) {
	type Board struct {
		Cells [2][2]string
	}
	b := Board{Cells: [2][2]string{{"x", "o"}, {"", "x"}}}
	text := toText(t, b)
	require.Equal(t, `{"Cells":[[2,2],["x","o","","x"]]}`, text)
	require.Equal(t, b, fromText[Board](t, text))
}
