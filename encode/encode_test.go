package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/orafile/ir"

	"github.com/google/go-cmp/cmp"
)

func sampleDict() *ir.Dict {
	return ir.NewDict().
		Add("HOST", ir.FromString("db.example.com")).
		Add("PORTS", ir.FromStrings("1521", "1522")).
		Add("DESC", ir.NewDict().Add("SID", ir.FromString("orcl")))
}

func TestRenderDocument(t *testing.T) {
	want := `HOST = db.example.com
PORTS = (
  1521,
  1522
)
DESC =
  (SID = orcl)
`
	got := String(sampleDict())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderStreaming(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Render(sampleDict(), buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != String(sampleDict()) {
		t.Errorf("streaming and in-memory output differ:\n%q\n%q", buf.String(), String(sampleDict()))
	}
}

func TestRenderTopLevelSeparators(t *testing.T) {
	for _, test := range []struct {
		name string
		in   *ir.Dict
		out  string
	}{
		{
			name: "empty",
			in:   ir.NewDict(),
			out:  "",
		},
		{
			name: "nil",
			in:   nil,
			out:  "",
		},
		{
			name: "single scalar",
			in:   ir.NewDict().Add("A", ir.FromString("1")),
			out:  "A = 1",
		},
		{
			name: "scalars",
			in: ir.NewDict().
				Add("A", ir.FromString("1")).
				Add("B", ir.FromString("2")),
			out: "A = 1\nB = 2",
		},
		{
			name: "list last",
			in: ir.NewDict().
				Add("A", ir.FromString("1")).
				Add("L", ir.FromStrings("x")),
			out: "A = 1\nL = (\n  x\n)",
		},
		{
			name: "empty list",
			in:   ir.NewDict().Add("L", ir.FromStrings()),
			out:  "L = (\n)",
		},
		{
			name: "empty dict",
			in:   ir.NewDict().Add("D", ir.NewDict()),
			out:  "D =\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := String(test.in)
			if diff := cmp.Diff(test.out, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderListCommas(t *testing.T) {
	got := String(ir.NewDict().Add("L", ir.FromStrings("a", "b", "c")))
	want := "L = (\n  a,\n  b,\n  c\n)"
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
	if strings.Contains(got, "c,") {
		t.Error("trailing comma after last element")
	}
	if strings.Count(got, ",") != 2 {
		t.Errorf("expected 2 commas, got %d", strings.Count(got, ","))
	}
}

func TestRenderNesting(t *testing.T) {
	for _, test := range []struct {
		name string
		in   *ir.Dict
		out  string
	}{
		{
			name: "one level",
			in: ir.NewDict().
				Add("name1", ir.NewDict().Add("name2", ir.FromString("value2"))),
			out: "name1 =\n  (name2 = value2)\n",
		},
		{
			name: "two levels",
			in: ir.NewDict().
				Add("a", ir.NewDict().
					Add("b", ir.NewDict().Add("c", ir.FromString("x")))),
			out: "a =\n  (b =\n    (c = x)\n  )\n",
		},
		{
			name: "three levels",
			in: ir.NewDict().
				Add("a", ir.NewDict().
					Add("b", ir.NewDict().
						Add("c", ir.NewDict().Add("d", ir.FromString("x"))))),
			out: "a =\n  (b =\n    (c =\n      (d = x)\n    )\n  )\n",
		},
		{
			name: "list in dict",
			in: ir.NewDict().
				Add("a", ir.NewDict().Add("L", ir.FromStrings("x", "y"))),
			out: "a =\n  (L = (\n    x,\n    y\n  ))\n",
		},
		{
			name: "siblings",
			in: ir.NewDict().
				Add("a", ir.NewDict().
					Add("b", ir.FromString("1")).
					Add("c", ir.FromString("2"))).
				Add("z", ir.FromString("3")),
			out: "a =\n  (b = 1)\n  (c = 2)\n\nz = 3",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := String(test.in)
			if diff := cmp.Diff(test.out, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderTNSEntry(t *testing.T) {
	d := ir.NewDict().Add("ORCL", ir.NewDict().
		Add("DESCRIPTION", ir.NewDict().
			Add("ADDRESS", ir.NewDict().
				Add("PROTOCOL", ir.FromString("TCP")).
				Add("HOST", ir.FromString("db.example.com")).
				Add("PORT", ir.FromString("1521"))).
			Add("CONNECT_DATA", ir.NewDict().
				Add("SERVICE_NAME", ir.FromString("orcl.example.com")))))
	want := `ORCL =
  (DESCRIPTION =
    (ADDRESS =
      (PROTOCOL = TCP)
      (HOST = db.example.com)
      (PORT = 1521)
    )
    (CONNECT_DATA =
      (SERVICE_NAME = orcl.example.com)
    )
  )
`
	if diff := cmp.Diff(want, String(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSortByKey(t *testing.T) {
	d := ir.NewDict().
		Add("B", ir.FromString("1")).
		Add("A", ir.FromString("2")).
		Add("B", ir.FromString("3"))

	if got, want := String(d), "B = 1\nA = 2\nB = 3"; got != want {
		t.Errorf("unsorted: expected %q got %q", want, got)
	}
	if got, want := String(d, SortByKey(true)), "A = 2\nB = 1\nB = 3"; got != want {
		t.Errorf("sorted: expected %q got %q", want, got)
	}
	if diff := cmp.Diff([]string{"B", "A", "B"}, d.Names()); diff != "" {
		t.Errorf("sorting modified the dictionary (-want +got):\n%s", diff)
	}
}

func TestSortByKeyNested(t *testing.T) {
	d := ir.NewDict().
		Add("z", ir.NewDict().
			Add("y", ir.FromString("1")).
			Add("x", ir.FromString("2"))).
		Add("a", ir.FromStrings("c", "b"))
	want := "a = (\n  c,\n  b\n)\nz =\n  (x = 2)\n  (y = 1)\n"
	if diff := cmp.Diff(want, String(d, SortByKey(true))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSortByKeyOrdinal(t *testing.T) {
	d := ir.NewDict().
		Add("b", ir.FromString("1")).
		Add("B", ir.FromString("2")).
		Add("_", ir.FromString("3")).
		Add("1", ir.FromString("4"))
	want := "1 = 4\nB = 2\n_ = 3\nb = 1"
	if got := String(d, SortByKey(true)); got != want {
		t.Errorf("expected %q got %q", want, got)
	}
}

func TestRendererDerive(t *testing.T) {
	r := New()
	s := r.SortByKey(true)
	if r.SortsByKey() {
		t.Error("deriving a renderer changed the original")
	}
	if !s.SortsByKey() {
		t.Error("derived renderer does not sort")
	}
	if s.SortByKey(false).SortsByKey() {
		t.Error("could not derive an unsorted renderer")
	}
}

type failWriter struct {
	n      int
	err    error
	writes int
}

func (f *failWriter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.n {
		return 0, f.err
	}
	return len(p), nil
}

func TestRenderWriteError(t *testing.T) {
	errClosed := errors.New("closed")
	for _, n := range []int{0, 1, 3, 7} {
		w := &failWriter{n: n, err: errClosed}
		err := Render(sampleDict(), w)
		if err == nil {
			t.Fatalf("n=%d: expected error", n)
		}
		if !errors.Is(err, ErrSinkWrite) {
			t.Errorf("n=%d: expected ErrSinkWrite, got %v", n, err)
		}
		if !errors.Is(err, errClosed) {
			t.Errorf("n=%d: expected underlying error, got %v", n, err)
		}
		var we *WriteError
		if !errors.As(err, &we) || we.Err != errClosed {
			t.Errorf("n=%d: expected *WriteError wrapping closed, got %#v", n, err)
		}
		if w.writes != n+1 {
			t.Errorf("n=%d: rendering continued after failure: %d writes", n, w.writes)
		}
	}
}

func TestRenderColors(t *testing.T) {
	colors := &Colors{
		Default: func(v string, _ ...any) string { return "<" + v + ">" },
		Map:     map[Colorable]func(string, ...any) string{},
	}
	d := ir.NewDict().
		Add("A", ir.FromString("x")).
		Add("B", ir.FromString("a b"))
	got := String(d, EncodeColors(colors))
	want := "<A>< = ><x>\n<B>< = ><\"a b\">"
	if got != want {
		t.Errorf("expected %q got %q", want, got)
	}
	if plain := String(d, EncodeColors(colors), EncodeColors(nil)); plain != String(d) {
		t.Errorf("clearing colors: got %q", plain)
	}
}

func TestNewColors(t *testing.T) {
	c := NewColors()
	for _, typ := range ir.Types() {
		for _, attr := range []ColorAttr{NameColor, SepColor, QuotedColor} {
			if _, ok := c.Map[Colorable{Type: typ, Attr: attr}]; !ok {
				t.Errorf("no color for %s/%d", typ, attr)
			}
		}
	}
	if got := c.Get(ir.DictType, ValueColor)("x"); got != "x" {
		t.Errorf("default color changed value: %q", got)
	}
}
