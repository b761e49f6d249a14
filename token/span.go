package token

// Span is a view of the bytes [lo, hi) of a source document.
type Span struct {
	src    string
	lo, hi int
}

// NewSpan returns a span covering all of src.
func NewSpan(src string) Span {
	return Span{src: src, lo: 0, hi: len(src)}
}

func (s Span) String() string { return s.src[s.lo:s.hi] }
func (s Span) Len() int       { return s.hi - s.lo }
func (s Span) IsEmpty() bool  { return s.hi == s.lo }

// Offset is the position of the span's first byte in the source.
func (s Span) Offset() int { return s.lo }

// Source is the whole document the span views.
func (s Span) Source() string { return s.src }

func (s Span) At(i int) byte { return s.src[s.lo+i] }

func (s Span) First() byte { return s.src[s.lo] }
func (s Span) Last() byte  { return s.src[s.hi-1] }

// Slice returns the sub-span [i, j) relative to s.
func (s Span) Slice(i, j int) Span {
	if i < 0 || j < i || s.lo+j > s.hi {
		panic("token: span slice out of range")
	}
	return Span{src: s.src, lo: s.lo + i, hi: s.lo + j}
}

// Equal reports whether the span's text equals lit.
func (s Span) Equal(lit string) bool {
	return s.String() == lit
}

// Trim narrows the span to exclude leading and trailing whitespace.
func (s Span) Trim() Span {
	lo, hi := s.lo, s.hi
	for lo < hi && isSpace(s.src[lo]) {
		lo++
	}
	for hi > lo && isSpace(s.src[hi-1]) {
		hi--
	}
	return Span{src: s.src, lo: lo, hi: hi}
}

// Pos returns the absolute position of offset i relative to s.
func (s Span) Pos(i int) *Pos {
	return &Pos{I: s.lo + i, src: s.src}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
