package encode

type EncodeOption func(*EncState)

// EncodeColors colors the output for a terminal.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeIndent puts each member and element on its own line, indented by
// indent per level. An empty indent gives canonical output.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}
