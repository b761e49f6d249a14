package gomap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/polywire/ir"
)

// arrayRank returns the number of directly nested fixed size array levels of
// t. Slices have rank 1, and so do slices of slices.
func arrayRank(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Slice:
		return 1
	case reflect.Array:
		if t.Elem().Kind() == reflect.Array && t.Elem() != uuidType {
			return 1 + arrayRank(t.Elem())
		}
		return 1
	}
	return 0
}

// arrayDims returns the lengths and the element type of a fixed size array
// type of the given rank.
func arrayDims(t reflect.Type, rank int) ([]int, reflect.Type) {
	dims := make([]int, rank)
	for i := range rank {
		dims[i] = t.Len()
		t = t.Elem()
	}
	return dims, t
}

// multiArray writes an array of rank > 1 as [lengths, elements] with the
// elements in row major order.
func (e *encoder) multiArray(val reflect.Value, fieldPath string) (*ir.Node, error) {
	rank := arrayRank(val.Type())
	dims, leaf := arrayDims(val.Type(), rank)
	lengths := make([]*ir.Node, rank)
	total := 1
	for i, d := range dims {
		lengths[i] = ir.FromInt(int64(d))
		total *= d
	}
	elems := make([]*ir.Node, 0, total)
	idx := make([]int, rank)
	var flatten func(v reflect.Value, depth int) error
	flatten = func(v reflect.Value, depth int) error {
		if depth == rank {
			node, err := e.value(v, leaf, fieldPath+indexPath(idx))
			if err != nil {
				return err
			}
			elems = append(elems, node)
			return nil
		}
		for i := range v.Len() {
			idx[depth] = i
			if err := flatten(v.Index(i), depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := flatten(val, 0); err != nil {
		return nil, err
	}
	return ir.FromSlice([]*ir.Node{ir.FromSlice(lengths), ir.FromSlice(elems)}), nil
}

func indexPath(idx []int) string {
	b := []byte{'['}
	for i, x := range idx {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(x), 10)
	}
	return string(append(b, ']'))
}

// multiArray reads [lengths, elements] into a fixed size array type of rank
// > 1, filling it in row major order.
func (d *decoder) multiArray(node *ir.Node, t reflect.Type, fieldPath string) (reflect.Value, error) {
	rank := arrayRank(t)
	dims, leaf := arrayDims(t, rank)
	fail := func(format string, args ...any) (reflect.Value, error) {
		return reflect.Value{}, &ConversionError{
			FieldPath: fieldPath,
			From:      node.Type,
			To:        t,
			Message:   fmt.Sprintf(format, args...),
		}
	}
	if len(node.Values) != 2 {
		return fail("expected [lengths, elements], got %d values", len(node.Values))
	}
	lnode, enode := node.Values[0], node.Values[1]
	if lnode.Type != ir.ArrayType || len(lnode.Values) != rank {
		return fail("expected %d lengths", rank)
	}
	total := 1
	for i, ln := range lnode.Values {
		if ln.Type != ir.NumberType {
			return fail("length %d is %s", i, ln.Type)
		}
		n, err := strconv.Atoi(ln.Raw)
		if err != nil {
			return fail("length %d: %v", i, err)
		}
		if n != dims[i] {
			return fail("length %d is %d, want %d", i, n, dims[i])
		}
		total *= n
	}
	var elems []*ir.Node
	switch enode.Type {
	case ir.ArrayType:
		elems = enode.Values
	case ir.NullType:
		// empty elements are written [], which reads as null
	default:
		return fail("elements are %s", enode.Type)
	}
	if len(elems) != total {
		return fail("got %d elements, want %d", len(elems), total)
	}
	res := reflect.New(t).Elem()
	idx := make([]int, rank)
	for _, elem := range elems {
		v, err := d.convert(elem, leaf, fieldPath+indexPath(idx))
		if err != nil {
			return reflect.Value{}, err
		}
		target := res
		for _, i := range idx {
			target = target.Index(i)
		}
		target.Set(v)
		for k := rank - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < dims[k] {
				break
			}
			idx[k] = 0
		}
	}
	return res, nil
}

// array reads an array node into a slice or a fixed size array of rank 1.
func (d *decoder) array(node *ir.Node, t reflect.Type, fieldPath string) (reflect.Value, error) {
	n := len(node.Values)
	var res reflect.Value
	if t.Kind() == reflect.Slice {
		res = reflect.MakeSlice(t, n, n)
	} else {
		if n > t.Len() {
			return reflect.Value{}, &ConversionError{
				FieldPath: fieldPath,
				From:      node.Type,
				To:        t,
				Message:   fmt.Sprintf("%d elements do not fit", n),
			}
		}
		res = reflect.New(t).Elem()
	}
	for i, elem := range node.Values {
		v, err := d.convert(elem, t.Elem(), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return reflect.Value{}, err
		}
		res.Index(i).Set(v)
	}
	return res, nil
}
