package ir

// Truth reports whether v is truthy: non-empty containers and strings,
// non-zero numbers and true. Null and Invalid are false.
func Truth(v *Value) bool {
	switch v.typ {
	case ObjectType:
		return len(v.obj) != 0
	case ArrayType:
		return len(v.arr) != 0
	case StringType:
		return v.s != ""
	case IntegerType:
		return v.i != 0
	case FloatType:
		return v.f != 0
	case BoolType:
		return v.b
	default:
		return false
	}
}
