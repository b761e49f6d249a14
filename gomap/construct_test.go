package gomap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
}

func newPoint(x, y int) point { return point{x: x, y: y} }

func pointRegistry(t *testing.T, opts ...RegisterOption) *Registry {
	t.Helper()
	r := NewRegistry()
	opts = append([]RegisterOption{
		Property("X", func(p point) int { return p.x }, nil),
		Property("Y", func(p point) int { return p.y }, nil),
	}, opts...)
	require.NoError(t, r.Register(point{}, opts...))
	return r
}

func TestConstructorBinding(t *testing.T) {
	r := pointRegistry(t, Constructor(newPoint, "x", "y"))
	require.Equal(t, `{"X":1,"Y":2}`, toText(t, point{1, 2}, WithRegistry(r)))
	require.Equal(t, point{1, 2}, fromText[point](t, `{"Y":2,"X":1}`, WithRegistry(r)))
	require.Equal(t, &point{3, 4}, fromText[*point](t, `{"x":3,"y":4}`, WithRegistry(r)))
}

func TestConstructorCandidates(t *testing.T) {
	polar := func(r, theta int) point { return point{x: r * 100, y: theta * 100} }
	r := pointRegistry(t,
		Constructor(polar, "R", "Theta"),
		Constructor(newPoint, "X", "Y"),
	)
	require.Equal(t, point{1, 2}, fromText[point](t, `{"X":1,"Y":2}`, WithRegistry(r)))
	require.Equal(t, point{100, 200}, fromText[point](t, `{"r":1,"theta":2}`, WithRegistry(r)))
}

func TestConstructorConversionIsFatal(t *testing.T) {
	r := pointRegistry(t,
		Constructor(newPoint, "X", "Y"),
		Constructor(func(x string, y int) point { return point{x: len(x), y: y} }, "X", "Y"),
	)
	_, err := tryFromText[point](`{"X":"abc","Y":1}`, WithRegistry(r))
	require.ErrorIs(t, err, ErrConversion)
}

func TestConstructorError(t *testing.T) {
	boom := errors.New("boom")
	r := pointRegistry(t, Constructor(func(x, y int) (*point, error) {
		if x < 0 {
			return nil, boom
		}
		return &point{x, y}, nil
	}, "X", "Y"))
	require.Equal(t, point{1, 1}, fromText[point](t, `{"X":1,"Y":1}`, WithRegistry(r)))
	_, err := tryFromText[point](`{"X":-1,"Y":1}`, WithRegistry(r))
	require.ErrorIs(t, err, ErrConstruction)
	require.ErrorIs(t, err, boom)
}

func TestNoMatchingConstructor(t *testing.T) {
	r := pointRegistry(t, Constructor(newPoint, "X", "Y"))
	_, err := tryFromText[point](`{"X":1}`, WithRegistry(r))
	require.ErrorIs(t, err, ErrConstruction)
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, []string{"X"}, ce.Members)

	_, err = tryFromText[point](`{"A":1,"B":2}`, WithRegistry(r))
	require.True(t, errors.As(err, &ce))
	require.Equal(t, []string{"A", "B"}, ce.Members)
}

func TestMissingMember(t *testing.T) {
	type S struct {
		A int
	}
	_, err := tryFromText[S](`{"A":1,"Z":2}`)
	require.ErrorIs(t, err, ErrConstruction)
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, []string{"Z"}, ce.Members)
}

type thermo struct {
	celsius float64
}

func (th *thermo) setCelsius(c float64) error {
	if c < -273.15 {
		return fmt.Errorf("%v is below absolute zero", c)
	}
	th.celsius = c
	return nil
}

func thermoRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(thermo{},
		Constructor(func() *thermo { return &thermo{celsius: 20} }),
		Property("Celsius", func(th *thermo) float64 { return th.celsius }, (*thermo).setCelsius),
	))
	return r
}

func TestPropertySetter(t *testing.T) {
	r := thermoRegistry(t)
	require.Equal(t, `{"Celsius":21.5}`, toText(t, thermo{celsius: 21.5}, WithRegistry(r)))
	require.Equal(t, thermo{celsius: 21.5}, fromText[thermo](t, `{"celsius":21.5}`, WithRegistry(r)))
	require.Equal(t, thermo{celsius: 20}, fromText[thermo](t, `{}`, WithRegistry(r)))

	_, err := tryFromText[thermo](`{"Celsius":-300}`, WithRegistry(r))
	require.ErrorIs(t, err, ErrConstruction)
}

func TestNullUsesRegisteredConstructor(t *testing.T) {
	r := thermoRegistry(t)
	require.Equal(t, thermo{celsius: 20}, fromText[thermo](t, `null`, WithRegistry(r)))
	require.Nil(t, fromText[*thermo](t, `null`, WithRegistry(r)))
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()
	for _, opt := range []RegisterOption{
		Constructor(42),
		Constructor(newPoint, "x"),
		Constructor(func() int { return 0 }),
		Constructor(func() (point, int) { return point{}, 0 }),
		Property("X", nil, nil),
		Property("X", func(s string) int { return 0 }, nil),
		Property("X", nil, func(p point, x int) {}),
		Property("X", func(p point) int { return 0 }, func(p *point, x string) {}),
	} {
		require.ErrorIs(t, r.Register(point{}, opt), ErrRegister)
	}
	require.ErrorIs(t, r.Register(0, Constructor(func() int { return 0 })), ErrRegister)
	require.ErrorIs(t, r.Register(nil), ErrRegister)
}

type duo struct {
	a, b int
}

func TestConstructorBindingPrefersExactName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(duo{},
		Constructor(func(a, b int) duo { return duo{a: a, b: b} }, "x", "X"),
	))
	require.Equal(t, duo{a: 2, b: 1}, fromText[duo](t, `{"X":1,"x":2}`, WithRegistry(r)))
	require.Equal(t, duo{a: 2, b: 1}, fromText[duo](t, `{"x":2,"X":1}`, WithRegistry(r)))
}
