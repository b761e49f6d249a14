package ir

// Truth reports whether node is a non-empty, non-zero, non-false value.
func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType, ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.Unquoted() != ""
	case NumberType:
		f, err := ParseFloat(node.Raw, 64)
		if err != nil {
			return node.Raw != ""
		}
		return f != 0
	case TrueType:
		return true
	case NameValueType:
		return Truth(node.Value)
	default:
		return false
	}
}
