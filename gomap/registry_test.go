package gomap

import (
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsTypeIdentifier(t *testing.T) {
	require.True(t, IsTypeIdentifier(circleID))
	require.True(t, IsTypeIdentifier("X, Version=1, Culture=c, PublicKeyToken=p"))
	require.False(t, IsTypeIdentifier("X, Version=1, Culture=c"))
	require.False(t, IsTypeIdentifier("name"))
	require.False(t, IsTypeIdentifier(""))
}

func TestQualifiedName(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, circleID, r.QualifiedName(reflect.TypeFor[circle]()))
	require.Equal(t, circleID, r.QualifiedName(reflect.TypeFor[*circle]()))
	require.Equal(t, "int, builtin, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null", r.QualifiedName(reflect.TypeFor[int]()))
	require.Equal(t, "time.Time, time, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null", r.QualifiedName(reflect.TypeFor[time.Time]()))

	r = NewRegistry(RegistryVersion("2.1.0.0"), RegistryAssembly("Shapes"))
	require.Equal(t, "github.com/signadot/polywire/gomap.circle, Shapes, Version=2.1.0.0, Culture=neutral, PublicKeyToken=null", r.QualifiedName(reflect.TypeFor[circle]()))
}

func TestResolve(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve(circleID)
	require.ErrorIs(t, err, ErrUnknownType)

	require.NoError(t, r.Register(&circle{}))
	rt, err := r.Resolve(circleID)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[*circle](), rt)

	rt, err = r.Resolve("int, builtin, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null")
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[int](), rt)
}

func TestRegisterName(t *testing.T) {
	r := NewRegistry()
	const id = "Shapes.Circle, Shapes, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"
	require.NoError(t, r.Register(circle{}, Name(id)))
	require.Equal(t, id, r.QualifiedName(reflect.TypeFor[circle]()))
	rt, err := r.Resolve("Shapes.Circle, Shapes, Version=3.0.0.0, Culture=neutral, PublicKeyToken=null")
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[circle](), rt)

	require.ErrorIs(t, r.Register(square{}, Name(id)), ErrRegister)
	require.ErrorIs(t, r.Register(square{}, Name("Shapes.Square")), ErrRegister)

	text := toText(t, drawing{Extra: circle{R: 1}}, WithRegistry(r))
	require.Equal(t, `{"Title":"","Shapes":null,"Extra":{"`+id+`":{"R":1}}}`, text)
	require.Equal(t, drawing{Shapes: []shape{}, Extra: circle{R: 1}}, fromText[drawing](t, text, WithRegistry(r)))
}

type pair[K, V any] struct {
	Key K
	Val V
}

func TestShortName(t *testing.T) {
	require.Equal(t, "a.B", shortName("a.B, a, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"))
	require.Equal(t, "a.Pair[int,string]", shortName("a.Pair[int,string], a, Version=1.0.0.0"))
	require.Equal(t, "a.B", shortName(" a.B "))
}

func TestResolveGenericOtherVersion(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(pair[int, string]{}))
	id := r.QualifiedName(reflect.TypeFor[pair[int, string]]())
	other := strings.Replace(id, "Version=1.0.0.0", "Version=9.0.0.0", 1)
	require.NotEqual(t, id, other)
	rt, err := r.Resolve(other)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[pair[int, string]](), rt)
}

func TestRegisterKeepsDescriptor(t *testing.T) {
	r := pointRegistry(t, Constructor(newPoint, "X", "Y"))
	const id = "Geo.Point, Geo, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null"
	require.NoError(t, r.Register(point{}, Name(id)))
	require.Equal(t, point{1, 2}, fromText[point](t, `{"X":1,"Y":2}`, WithRegistry(r)))
}

func TestObserveConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			node, err := ToIR(drawing{Extra: circle{R: 1}}, WithRegistry(r))
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := FromIR(node, reflect.TypeFor[drawing](), WithRegistry(r)); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	rt, err := r.Resolve(circleID)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[circle](), rt)
}

type recorded struct{ N int }

func TestToIRRecordsInDefaultRegistry(t *testing.T) {
	id := DefaultRegistry().QualifiedName(reflect.TypeFor[recorded]())
	_, err := DefaultRegistry().Resolve(id)
	require.ErrorIs(t, err, ErrUnknownType)

	text := toText(t, drawing{Extra: recorded{N: 1}})
	require.Contains(t, text, id)
	rt, err := DefaultRegistry().Resolve(id)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[recorded](), rt)
}
