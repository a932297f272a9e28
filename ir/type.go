package ir

import "fmt"

type Type int

const (
	ValueType Type = iota
	CollectionType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ValueType:      "Value",
		CollectionType: "Collection",
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
		"Value":      ValueType,
		"Collection": CollectionType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w %q", ErrBadType, d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{ValueType, CollectionType}
}

func (t Type) IsLeaf() bool {
	return t != CollectionType
}
