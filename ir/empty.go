package ir

// Empty reports whether node carries no content: null, the empty string, or
// an object or array without entries. Numbers and booleans are never empty.
func Empty(node *Node) bool {
	switch node.Type {
	case ObjectType:
		return len(node.Fields) == 0
	case ArrayType:
		return len(node.Values) == 0
	case StringType:
		return node.String == ""
	case NullType:
		return true
	case NumberType, BoolType:
		return false
	default:
		panic("type")
	}
}
