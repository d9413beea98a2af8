package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/orafile/encode"
	"github.com/signadot/orafile/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	S       bool `cli:"name=s aliases=sort desc='sort definitions by name'"`
	Color   bool `cli:"name=color desc='render with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debugging information to stderr'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// plainRenderer is the renderer used when output is compared rather than
// shown.
func (cfg *MainConfig) plainRenderer() encode.Renderer {
	return encode.New().SortByKey(cfg.S)
}

func (cfg *MainConfig) renderer(w io.Writer) encode.Renderer {
	if !cfg.colors(w) {
		return cfg.plainRenderer()
	}
	return encode.New(encode.EncodeColors(encode.NewColors())).SortByKey(cfg.S)
}

// colors reports whether output to w should be colored: -color wins when
// given, otherwise color is used on terminals.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RenderConfig struct {
	*MainConfig
	Select string `cli:"name=select desc='only render top-level definitions matching this expression'"`

	Render *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
