package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	TimeType
	DateType
	DecimalType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:  "Object",
		ArrayType:   "Array",
		StringType:  "String",
		NumberType:  "Number",
		BoolType:    "Bool",
		NullType:    "Null",
		TimeType:    "Time",
		DateType:    "Date",
		DecimalType: "Decimal",
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
		"Null":    NullType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"String":  StringType,
		"Time":    TimeType,
		"Date":    DateType,
		"Decimal": DecimalType,
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
		NullType,
		NumberType,
		StringType,
		BoolType,
		TimeType,
		DateType,
		DecimalType,
		ObjectType,
		ArrayType,
	}
}

// IsLeaf reports whether values of this type have no children.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func (t Type) valid() bool {
	return t >= NullType && t <= ArrayType
}
