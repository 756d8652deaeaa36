package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
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
		"Null":   NullType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
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
		StringType,
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
