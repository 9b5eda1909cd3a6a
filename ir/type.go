package ir

import "fmt"

type Type int

const (
	InvalidType Type = iota
	NullType
	BoolType
	StringType
	IntegerType
	FloatType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		InvalidType: "Invalid",
		NullType:    "Null",
		BoolType:    "Bool",
		StringType:  "String",
		IntegerType: "Integer",
		FloatType:   "Float",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Invalid": InvalidType,
		"Null":    NullType,
		"Bool":    BoolType,
		"String":  StringType,
		"Integer": IntegerType,
		"Float":   FloatType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		InvalidType,
		NullType,
		BoolType,
		StringType,
		IntegerType,
		FloatType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// IsNumber reports whether t is one of the two numeric kinds.
func (t Type) IsNumber() bool {
	return t == IntegerType || t == FloatType
}
