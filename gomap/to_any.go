package gomap

import (
	"github.com/signadot/orafile/ir"
)

// ToAny converts v into plain Go values: string, []string and
// map[string]any.  When a dictionary repeats a name the first definition
// wins.
func ToAny(v ir.Val) any {
	switch x := v.(type) {
	case ir.String:
		return string(x)
	case ir.StringList:
		return []string(x)
	case *ir.Dict:
		res := make(map[string]any, x.Len())
		for _, def := range x.Defs {
			if _, ok := res[def.Name]; ok {
				continue
			}
			res[def.Name] = ToAny(def.Val)
		}
		return res
	default:
		return nil
	}
}
