// Package selector picks top-level definitions of a document with
// expr-lang expressions.
//
// An expression sees one definition at a time through these variables:
//
//	name   the definition name
//	kind   "String", "StringList" or "Dict"
//	value  the value as string, []string or map[string]any
//
// and the function lookup(path) which walks nested dictionaries by a
// dotted path of names, returning nil when nothing matches:
//
//	name startsWith "PROD_"
//	kind == "Dict" && lookup("DESCRIPTION.ADDRESS.PORT") == "1521"
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/orafile/debug"
	"github.com/signadot/orafile/gomap"
	"github.com/signadot/orafile/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrSelect = errors.New("select error")

// Env is the environment an expression is evaluated in.
type Env struct {
	Name   string           `expr:"name"`
	Kind   string           `expr:"kind"`
	Value  any              `expr:"value"`
	Lookup func(string) any `expr:"lookup"`
}

type Selector struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Selector, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelect, err)
	}
	return &Selector{src: src, prg: prg}, nil
}

func (s *Selector) String() string { return s.src }

func newEnv(def ir.Def) Env {
	return Env{
		Name:  def.Name,
		Kind:  def.Val.Type().String(),
		Value: gomap.ToAny(def.Val),
		Lookup: func(path string) any {
			v := Lookup(def.Val, path)
			if v == nil {
				return nil
			}
			return gomap.ToAny(v)
		},
	}
}

// Lookup follows a dotted path of definition names through nested
// dictionaries, starting at v.  The empty path returns v.
func Lookup(v ir.Val, path string) ir.Val {
	if path == "" {
		return v
	}
	for _, name := range strings.Split(path, ".") {
		d, ok := v.(*ir.Dict)
		if !ok {
			return nil
		}
		v, ok = d.Get(name)
		if !ok {
			return nil
		}
	}
	return v
}

func (s *Selector) Match(def ir.Def) (bool, error) {
	out, err := expr.Run(s.prg, newEnv(def))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrSelect, def.Name, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: expression returned %T", ErrSelect, def.Name, out)
	}
	if debug.Select() {
		debug.Logf("select %q on %s: %t", s.src, def.Name, res)
	}
	return res, nil
}

// Filter returns a new dictionary holding the definitions of d which match.
// d is not modified.
func (s *Selector) Filter(d *ir.Dict) (*ir.Dict, error) {
	res := ir.NewDict()
	for _, def := range d.Defs {
		ok, err := s.Match(def)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Defs = append(res.Defs, def)
		}
	}
	return res, nil
}
