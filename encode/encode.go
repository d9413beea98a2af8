package encode

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/signadot/orafile/debug"
	"github.com/signadot/orafile/ir"
)

const (
	lineSep    = "\n"
	indentStep = "  "
)

var (
	safeString = regexp.MustCompile(`^[A-Za-z0-9<>/.:;\-_$+*&!%?@]+$`)
	escaper    = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// Renderer writes dictionaries in Oracle network configuration syntax.  The
// zero value keeps definitions in insertion order.
type Renderer struct {
	sortByKey bool
	color     func(ir.Type, ColorAttr, string) string
}

func New(opts ...EncodeOption) Renderer {
	r := Renderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SortByKey returns a copy of r with key sorting set to v.
func (r Renderer) SortByKey(v bool) Renderer {
	r.sortByKey = v
	return r
}

func (r Renderer) SortsByKey() bool { return r.sortByKey }

// encState is the per call state of a render.
type encState struct {
	Renderer
	w io.Writer
}

// Render writes the definitions of d to w as top-level definitions.  The
// first error returned by w aborts rendering and is returned as a
// *WriteError.
func (r Renderer) Render(d *ir.Dict, w io.Writer) error {
	es := &encState{Renderer: r, w: w}
	defs := r.defs(d)
	if debug.Render() {
		debug.Logf("render %d definitions sortByKey=%t", len(defs), r.sortByKey)
	}
	for i := range defs {
		if err := es.renderDef(&defs[i], false, ""); err != nil {
			return err
		}
		if i < len(defs)-1 {
			if err := es.writeString(lineSep); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders d into memory.  It panics if rendering fails, which an
// in-memory writer never causes.
func (r Renderer) String(d *ir.Dict) string {
	buf := &strings.Builder{}
	if err := r.Render(d, buf); err != nil {
		panic(fmt.Errorf("%w: %w", errInternal, err))
	}
	return buf.String()
}

func Render(d *ir.Dict, w io.Writer, opts ...EncodeOption) error {
	return New(opts...).Render(d, w)
}

func String(d *ir.Dict, opts ...EncodeOption) string {
	return New(opts...).String(d)
}

func (es *encState) renderDef(def *ir.Def, parens bool, indent string) error {
	if err := es.writeString(indent); err != nil {
		return err
	}
	if parens {
		if err := es.writeSep(def.Val.Type(), "("); err != nil {
			return err
		}
	}
	if err := es.renderVal(def.Name, def.Val, parens, indent); err != nil {
		return err
	}
	if parens {
		if err := es.writeSep(def.Val.Type(), ")"); err != nil {
			return err
		}
		return es.writeString(lineSep)
	}
	return nil
}

func (es *encState) renderVal(name string, v ir.Val, parens bool, indent string) error {
	nextIndent := indent + indentStep

	switch x := v.(type) {
	case ir.String:
		if err := es.writeName(ir.StringType, name, " = "); err != nil {
			return err
		}
		return es.writeScalar(ir.StringType, string(x))

	case ir.StringList:
		if err := es.writeName(ir.StringListType, name, " = ("); err != nil {
			return err
		}
		if err := es.writeString(lineSep); err != nil {
			return err
		}
		for i, s := range x {
			if err := es.writeString(nextIndent); err != nil {
				return err
			}
			if err := es.writeScalar(ir.StringListType, s); err != nil {
				return err
			}
			if i < len(x)-1 {
				if err := es.writeSep(ir.StringListType, ","); err != nil {
					return err
				}
			}
			if err := es.writeString(lineSep); err != nil {
				return err
			}
		}
		if err := es.writeString(indent); err != nil {
			return err
		}
		return es.writeSep(ir.StringListType, ")")

	case *ir.Dict:
		if err := es.writeName(ir.DictType, name, " ="); err != nil {
			return err
		}
		if err := es.writeString(lineSep); err != nil {
			return err
		}
		defs := es.defs(x)
		for i := range defs {
			if err := es.renderDef(&defs[i], true, nextIndent); err != nil {
				return err
			}
		}
		if parens {
			return es.writeString(indent)
		}
		return nil

	default:
		panic(fmt.Sprintf("definition %q: unsupported value %T", name, v))
	}
}

// defs returns the definitions of d in rendering order without modifying d.
func (r Renderer) defs(d *ir.Dict) []ir.Def {
	if d == nil {
		return nil
	}
	if !r.sortByKey {
		return d.Defs
	}
	defs := slices.Clone(d.Defs)
	slices.SortStableFunc(defs, func(a, b ir.Def) int {
		return strings.Compare(a.Name, b.Name)
	})
	return defs
}

// IsSafe reports whether s can be written without quotes.
func IsSafe(s string) bool {
	return safeString.MatchString(s)
}

// Quote returns s as it appears in rendered output.
func Quote(s string) string {
	if IsSafe(s) {
		return s
	}
	return quote(s)
}

// quote wraps s in double quotes, doubling backslashes and escaping quotes.
func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

func (es *encState) writeName(t ir.Type, name, sep string) error {
	if es.color != nil {
		name = es.color(t, NameColor, name)
		sep = es.color(t, SepColor, sep)
	}
	return es.writeString(name + sep)
}

func (es *encState) writeSep(t ir.Type, sep string) error {
	if es.color != nil {
		sep = es.color(t, SepColor, sep)
	}
	return es.writeString(sep)
}

func (es *encState) writeScalar(t ir.Type, s string) error {
	if IsSafe(s) {
		if es.color != nil {
			s = es.color(t, ValueColor, s)
		}
		return es.writeString(s)
	}
	s = quote(s)
	if es.color != nil {
		s = es.color(t, QuotedColor, s)
	}
	return es.writeString(s)
}

func (es *encState) writeString(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(es.w, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
