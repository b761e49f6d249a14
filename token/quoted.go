package token

import "strings"

// Quote returns v surrounded by double quotes with the characters
// '"', '\\', '\b', '\f', '\n', '\r' and '\t' escaped. Everything else,
// including other control characters, is left unchanged.
func Quote(v string) string {
	d := make([]byte, 0, len(v)+2)
	return string(AppendQuote(d, v))
}

// AppendQuote appends the quoted form of v to d.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	return append(d, '"')
}

// Unquote returns the content of the quoted literal v. The surrounding quotes
// are removed if present and the escapes produced by Quote are reversed. Any
// other backslash sequence passes through unchanged.
func Unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return Unescape(v)
}

// Unescape reverses the escapes of Quote in v, which has no surrounding quotes.
func Unescape(v string) string {
	i := strings.IndexByte(v, '\\')
	if i == -1 {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	b.WriteString(v[:i])
	n := len(v)
	for i < n {
		c := v[i]
		if c != '\\' || i == n-1 {
			b.WriteByte(c)
			i++
			continue
		}
		switch v[i+1] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(v[i+1])
		}
		i += 2
	}
	return b.String()
}
