package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	StringListType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:     "String",
		StringListType: "StringList",
		DictType:       "Dict",
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
		"String":     StringType,
		"StringList": StringListType,
		"Dict":       DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: unrecognized type %q", ErrType, d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		StringListType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	return t != DictType
}
