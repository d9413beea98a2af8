package load

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/orafile/debug"
	"github.com/signadot/orafile/format"
	"github.com/signadot/orafile/gomap"
	"github.com/signadot/orafile/ir"

	"github.com/goccy/go-yaml"
)

var ErrLoad = errors.New("load error")

func Load(d []byte, f format.Format) (*ir.Dict, error) {
	var (
		res *ir.Dict
		err error
	)
	switch f {
	case format.YAMLFormat, format.JSONFormat:
		res, err = loadYAML(d)
	case format.TOMLFormat:
		res, err = loadTOML(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, f, err)
	}
	if debug.Load() {
		debug.Logf("loaded %s document:\n%s", f, res)
	}
	return res, nil
}

func Reader(r io.Reader, f format.Format) (*ir.Dict, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Load(d, f)
}

// File loads the file at path.  When f is nil the format is taken from the
// file extension.
func File(path string, f *format.Format) (*ir.Dict, error) {
	var fmat format.Format
	if f != nil {
		fmat = *f
	} else {
		pf, err := format.FromPath(path)
		if err != nil {
			return nil, err
		}
		fmat = pf
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return Load(d, fmat)
}

func loadYAML(d []byte) (*ir.Dict, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return gomap.ToDict(v)
}
