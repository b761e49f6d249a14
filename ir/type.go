package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	TrueType
	FalseType
	NumberType
	StringType
	ObjectType
	ArrayType
	NameValueType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		TrueType:      "True",
		FalseType:     "False",
		NumberType:    "Number",
		StringType:    "String",
		ObjectType:    "Object",
		ArrayType:     "Array",
		NameValueType: "NameValue",
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
		"Null":      NullType,
		"True":      TrueType,
		"False":     FalseType,
		"Number":    NumberType,
		"String":    StringType,
		"Object":    ObjectType,
		"Array":     ArrayType,
		"NameValue": NameValueType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		TrueType,
		FalseType,
		NumberType,
		StringType,
		ObjectType,
		ArrayType,
		NameValueType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType, NameValueType:
		return false
	default:
		return true
	}
}

// IsBool is true for TrueType and FalseType.
func (t Type) IsBool() bool {
	return t == TrueType || t == FalseType
}
