package ir

import (
	"bytes"
	"encoding/json"
	"slices"
)

type Val interface {
	Type() Type
	isVal()
}

type String string

func (String) Type() Type { return StringType }
func (String) isVal()     {}

type StringList []string

func (StringList) Type() Type { return StringListType }
func (StringList) isVal()     {}

type Def struct {
	Name string
	Val  Val
}

type Dict struct {
	Defs []Def
}

func (*Dict) Type() Type { return DictType }
func (*Dict) isVal()     {}

func FromString(s string) String {
	return String(s)
}

func FromStrings(ss ...string) StringList {
	return StringList(slices.Clone(ss))
}

func FromDefs(defs ...Def) *Dict {
	return &Dict{Defs: slices.Clone(defs)}
}

func NewDict() *Dict {
	return &Dict{}
}

// Add appends a definition and returns d so calls can be chained.
func (d *Dict) Add(name string, v Val) *Dict {
	d.Defs = append(d.Defs, Def{Name: name, Val: v})
	return d
}

// Get returns the value of the first definition called name.
func (d *Dict) Get(name string) (Val, bool) {
	for i := range d.Defs {
		if d.Defs[i].Name == name {
			return d.Defs[i].Val, true
		}
	}
	return nil, false
}

func (d *Dict) Len() int {
	return len(d.Defs)
}

func (d *Dict) Names() []string {
	res := make([]string, len(d.Defs))
	for i := range d.Defs {
		res[i] = d.Defs[i].Name
	}
	return res
}

func (d *Dict) Clone() *Dict {
	res := &Dict{Defs: make([]Def, len(d.Defs))}
	for i, def := range d.Defs {
		res.Defs[i] = Def{Name: def.Name, Val: CloneVal(def.Val)}
	}
	return res
}

func CloneVal(v Val) Val {
	switch x := v.(type) {
	case String:
		return x
	case StringList:
		return slices.Clone(x)
	case *Dict:
		return x.Clone()
	default:
		panic("type")
	}
}

// MarshalJSON encodes d as a JSON object keeping definition order.
// Duplicate names are emitted as is.
func (d *Dict) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, def := range d.Defs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(def.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(def.Val)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
