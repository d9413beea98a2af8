package load

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/signadot/orafile/gomap"
	"github.com/signadot/orafile/ir"

	"github.com/BurntSushi/toml"
)

func loadTOML(d []byte) (*ir.Dict, error) {
	var m map[string]any
	md, err := toml.Decode(string(d), &m)
	if err != nil {
		return nil, err
	}
	order := map[string]int{}
	for i, k := range md.Keys() {
		order[k.String()] = i
	}
	return tomlTable(m, nil, order)
}

// tomlTable converts a decoded table, placing keys in document order.  Keys
// the metadata does not know about follow the known ones, sorted by name.
func tomlTable(m map[string]any, prefix toml.Key, order map[string]int) (*ir.Dict, error) {
	type entry struct {
		name string
		pos  int
	}
	entries := make([]entry, 0, len(m))
	for name := range m {
		key := append(slices.Clone(prefix), name)
		pos, ok := order[key.String()]
		if !ok {
			pos = len(order)
		}
		entries = append(entries, entry{name: name, pos: pos})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	res := ir.NewDict()
	for _, e := range entries {
		var (
			v   ir.Val
			err error
		)
		if sub, ok := m[e.name].(map[string]any); ok {
			v, err = tomlTable(sub, append(slices.Clone(prefix), e.name), order)
		} else {
			v, err = gomap.ToVal(m[e.name])
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}
		res.Add(e.name, v)
	}
	return res, nil
}
