package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is an absolute offset into a source document.
type Pos struct {
	I   int
	src string
}

func (p *Pos) LineCol() (int, int) {
	return LineCol(p.src, p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := p.src[max(0, p.I-5):min(p.I+5, len(p.src))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}

// LineCol returns the 0-based line and column of offset off in src.
func LineCol(src string, off int) (int, int) {
	off = min(max(off, 0), len(src))
	head := src[:off]
	line := strings.Count(head, "\n")
	if line == 0 {
		return 0, off
	}
	return line, off - strings.LastIndexByte(head, '\n') - 1
}
