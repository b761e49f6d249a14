package token

// SplitMode controls how Split treats the entries between delimiters.
// The zero mode keeps every entry as is.
type SplitMode uint8

const (
	// SkipEmpty drops entries which are empty (after trimming if TrimSpace is set).
	SkipEmpty SplitMode = 1 << iota
	// TrimSpace narrows each entry to exclude surrounding whitespace.
	TrimSpace
)

// Split returns the entries of s separated by top level occurrences of delim.
func Split(s Span, delim byte, mode SplitMode) ([]Span, error) {
	var (
		res   []Span
		start = 0
		n     = s.Len()
	)
	for start <= n {
		i, err := nextDelim(s, start, delim)
		if err != nil {
			return nil, err
		}
		part := s.Slice(start, i)
		if mode&TrimSpace != 0 {
			part = part.Trim()
		}
		if mode&SkipEmpty == 0 || !part.IsEmpty() {
			res = append(res, part)
		}
		start = i + 1
	}
	return res, nil
}

// SplitFirst splits s around the first top level occurrence of delim. If there
// is no such occurrence, ok is false and head is s.
func SplitFirst(s Span, delim byte) (head, tail Span, ok bool, err error) {
	i, err := nextDelim(s, 0, delim)
	if err != nil {
		return s, Span{}, false, err
	}
	if i == s.Len() {
		return s, Span{}, false, nil
	}
	return s.Slice(0, i), s.Slice(i+1, s.Len()), true, nil
}

// QuotedEnd returns the offset just past the literal which starts with the
// double quote at offset i of s.
func QuotedEnd(s Span, i int) (int, error) {
	n := s.Len()
	for j := i + 1; j < n; j++ {
		switch s.At(j) {
		case '\\':
			j++
		case '"':
			return j + 1, nil
		}
	}
	return 0, NewParseErr(ErrUnterminated, s, i, "string literal")
}

// nextDelim returns the offset of the next top level delim at or after i, or
// s.Len() if there is none.
func nextDelim(s Span, i int, delim byte) (int, error) {
	n := s.Len()
	for i < n {
		c := s.At(i)
		switch {
		case c == delim:
			return i, nil
		case c == '"':
			j, err := QuotedEnd(s, i)
			if err != nil {
				return 0, err
			}
			i = j
			continue
		case closerOf(c) != 0:
			j, err := bodyEnd(s, i)
			if err != nil {
				return 0, err
			}
			i = j
			continue
		case isCloser(c):
			return 0, NewParseErr(ErrDocBalance, s, i, "unopened %q", c)
		}
		i++
	}
	return n, nil
}

// bodyEnd returns the offset just past the body opened at offset i of s.
func bodyEnd(s Span, i int) (int, error) {
	var (
		stack = []byte{closerOf(s.At(i))}
		n     = s.Len()
		j     = i + 1
	)
	for j < n {
		c := s.At(j)
		switch {
		case c == '"':
			k, err := QuotedEnd(s, j)
			if err != nil {
				return 0, err
			}
			j = k
			continue
		case closerOf(c) != 0:
			stack = append(stack, closerOf(c))
		case isCloser(c):
			want := stack[len(stack)-1]
			if c != want {
				return 0, NewParseErr(ErrDocBalance, s, j, "expected %q got %q", want, c)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return j + 1, nil
			}
		}
		j++
	}
	return 0, NewParseErr(ErrUnterminated, s, i, "%q", s.At(i))
}

func closerOf(c byte) byte {
	switch c {
	case '[':
		return ']'
	case '{':
		return '}'
	case '(':
		return ')'
	case '<':
		return '>'
	}
	return 0
}

func isCloser(c byte) bool {
	switch c {
	case ']', '}', ')', '>':
		return true
	}
	return false
}
