package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/orafile/debug"
	"github.com/signadot/orafile/encode"
	"github.com/signadot/orafile/format"
	"github.com/signadot/orafile/ir"
	"github.com/signadot/orafile/load"

	"github.com/scott-cotton/cli"
)

// getDict loads the document at path, "-" meaning cc.In.  Without -I the
// format comes from the file extension, falling back to yaml which also
// reads json.
func (cfg *MainConfig) getDict(cc *cli.Context, path string) (*ir.Dict, error) {
	fmat := format.YAMLFormat
	switch {
	case cfg.InFormat != nil:
		fmat = *cfg.InFormat
	case path != "-":
		f, err := format.FromPath(path)
		if err == nil {
			fmat = f
		} else if debug.Load() {
			debug.Logf("%s: %v, reading as %s", path, err, fmat)
		}
	}

	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return load.Reader(r, fmat)
}

// renderText renders d as the content of an .ora file: the rendered
// definitions terminated by a newline.
func renderText(r encode.Renderer, d *ir.Dict) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := r.Render(d, buf); err != nil {
		return nil, err
	}
	if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func writeOut(w io.Writer, d []byte) error {
	if _, err := w.Write(d); err != nil {
		return &encode.WriteError{Err: err}
	}
	return nil
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return d, nil
}
