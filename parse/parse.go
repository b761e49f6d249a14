package parse

import (
	"fmt"

	"github.com/signadot/polywire/debug"
	"github.com/signadot/polywire/ir"
	"github.com/signadot/polywire/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	p := &parser{opts: po}
	node, err := p.parse(token.NewSpan(s))
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %q: %v\n", s, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logf("parse %q -> %v\n", s, node)
	}
	return node, nil
}

type parser struct {
	opts *parseOpts
}

func (p *parser) parse(s token.Span) (*ir.Node, error) {
	s = s.Trim()
	if s.IsEmpty() {
		return nil, token.NewParseErr(token.ErrEmptyDoc, s, 0, "no value")
	}
	switch {
	case s.Equal("null"):
		return ir.Null(), nil
	case s.Equal("true"):
		return ir.True(), nil
	case s.Equal("false"):
		return ir.False(), nil
	}
	switch s.First() {
	case '{':
		return p.parseObject(s)
	case '[':
		return p.parseArray(s)
	case '"':
		return p.parseString(s)
	}
	return p.record(ir.FromNumber(s.String()), s), nil
}

func (p *parser) parseObject(s token.Span) (*ir.Node, error) {
	n := s.Len()
	if n < 2 || s.Last() != '}' {
		return nil, token.NewParseErr(token.ErrDocBalance, s, n-1, "object must end with '}'")
	}
	parts, err := token.Split(s.Slice(1, n-1), ',', token.SkipEmpty|token.TrimSpace)
	if err != nil {
		return nil, err
	}
	pairs := make([]*ir.Node, 0, len(parts))
	for _, part := range parts {
		ns, vs, ok, err := token.SplitFirst(part, ':')
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, token.NewParseErr(ErrMissingColon, part, 0, "got %q", part.String())
		}
		name, err := p.parse(ns)
		if err != nil {
			return nil, err
		}
		if name.Type != ir.StringType {
			return nil, token.NewParseErr(ErrPairName, ns, 0, "got %s", name.Type)
		}
		val, err := p.parse(vs)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p.record(ir.FromPair(name, val), part))
	}
	return p.record(ir.FromPairs(pairs), s), nil
}

func (p *parser) parseArray(s token.Span) (*ir.Node, error) {
	if s.Equal("[]") {
		return ir.Null(), nil
	}
	n := s.Len()
	if n < 2 || s.Last() != ']' {
		return nil, token.NewParseErr(token.ErrDocBalance, s, n-1, "array must end with ']'")
	}
	parts, err := token.Split(s.Slice(1, n-1), ',', token.SkipEmpty|token.TrimSpace)
	if err != nil {
		return nil, err
	}
	vals := make([]*ir.Node, 0, len(parts))
	for _, part := range parts {
		v, err := p.parse(part)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return p.record(ir.FromSlice(vals), s), nil
}

func (p *parser) parseString(s token.Span) (*ir.Node, error) {
	n := s.Len()
	if n < 2 || s.Last() != '"' {
		return nil, token.NewParseErr(token.ErrUnterminated, s, 0, "string literal")
	}
	end, err := token.QuotedEnd(s, 0)
	if err != nil {
		return nil, err
	}
	if end != n {
		return nil, token.NewParseErr(token.ErrLiteral, s, end, "text after string literal")
	}
	return p.record(ir.FromQuoted(s.String()), s), nil
}

func (p *parser) record(node *ir.Node, s token.Span) *ir.Node {
	if p.opts.positions != nil {
		p.opts.positions[node] = s.Pos(0)
	}
	return node
}
