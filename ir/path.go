package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Subtree {
			if x.Next != nil && x.Next.Field != nil {
				buf.WriteString(".")
			} else {
				buf.WriteString("..")
			}
			x = x.Next
			continue
		}
		if x.IndexAll {
			buf.WriteString("[*]")
			x = x.Next
			continue
		}
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()

}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			next := &Path{}
			rest := frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			err := parseFrag(rest, next)
			if err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("%w: expected '[' <index> ']'", ErrPath)
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("%w: expected '.' or '['", ErrPath)
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: expected field at end of string", ErrPath)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of string scanning for \"'\"", ErrPath)
}

// GetPath returns the node selected by path, which may not contain '[*]'
// or '..'. If an object member along the path is missing, the result is nil.
func (y *Node) GetPath(path string) (*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		if yp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrPath, res.Type)
			}
			index := *yp.Index
			if index < 0 || index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d)", ErrPath, index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object got %s", ErrPath, res.Type)
			}
			v, err := res.Lookup(*yp.Field, false)
			if err != nil {
				return nil, nil
			}
			res = v
			yp = yp.Next
			continue
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("%w: unexpected next w/out index or field", ErrPath)
		}
		return res, nil
	}
	return res, nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// ListPath appends to dst every node selected by path.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil {
		return append(dst, y), nil
	}
	var err error
	if yp.Subtree {
		if err := y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			if node.Type == NameValueType {
				return true, nil
			}
			dst, err = node.listPath(dst, yp.Next)
			if err != nil {
				return false, err
			}
			return true, nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	switch y.Type {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst, nil
		}
		if yp.Field == nil && yp.Next == nil {
			return append(dst, y), nil
		}
		if yp.Field == nil {
			return dst, nil
		}
		for name, v := range y.Pairs() {
			if name != *yp.Field {
				continue
			}
			dst, err = v.listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	case ArrayType:
		if yp.Field != nil {
			return dst, nil
		}
		if yp.Index == nil && !yp.IndexAll && yp.Next == nil {
			return append(dst, y), nil
		}
		if yp.Index != nil {
			idx := *yp.Index
			if 0 <= idx && idx < len(y.Values) {
				dst, err = y.Values[idx].listPath(dst, yp.Next)
				if err != nil {
					return nil, err
				}
			}
			return dst, nil
		}
		if !yp.IndexAll {
			return dst, nil
		}
		for _, yv := range y.Values {
			dst, err = yv.listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst, nil
		}
		if yp.Next == nil {
			dst = append(dst, y)
		}
		return dst, nil
	}
}

// JoinField returns the path of member name of the node at path p.
func JoinField(p, name string) string {
	return p + "." + pathString(name)
}

// JoinIndex returns the path of element i of the array at path p.
func JoinIndex(p string, i int) string {
	return p + "[" + strconv.Itoa(i) + "]"
}
