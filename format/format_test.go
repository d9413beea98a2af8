package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %s got %s", in, want, got)
		}
	}
	if _, err := ParseFormat("ora"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	for _, test := range []struct {
		path string
		want Format
		err  bool
	}{
		{path: "a/b/tns.yaml", want: YAMLFormat},
		{path: "tns.YML", want: YAMLFormat},
		{path: "tns.json", want: JSONFormat},
		{path: "listener.toml", want: TOMLFormat},
		{path: "tnsnames.ora", err: true},
		{path: "Makefile", err: true},
	} {
		got, err := FromPath(test.path)
		if test.err {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("%s: expected ErrBadFormat, got %v", test.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.path, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: expected %s got %s", test.path, test.want, got)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat, TOMLFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("expected %s got %s", f, g)
		}
	}
	if _, err := Format(42).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}
