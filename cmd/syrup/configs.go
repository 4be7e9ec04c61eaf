package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-syrup/debug"
	"github.com/signadot/go-syrup/encode"
	"github.com/signadot/go-syrup/format"
	"github.com/signadot/go-syrup/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Depth   int    `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`
	Indent  int    `cli:"name=indent desc='spaces per indentation level'"`
	Verbose bool   `cli:"name=v desc='trace decoding to stderr'"`
	Config  string `cli:"name=config desc='defaults file (default $HOME/.syrup.toml)'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	// defaults read from the config file, nil if there is none.
	file *fileDefaults

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

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) parseOpts() []parse.DecodeOption {
	depth := parse.DefaultMaxDepth
	switch {
	case cfg.optSet("depth"):
		depth = cfg.Depth
	case cfg.file != nil && cfg.file.maxDepth != nil:
		depth = *cfg.file.maxDepth
	}
	res := []parse.DecodeOption{
		parse.DecodeMaxDepth(depth),
	}
	if cfg.Verbose {
		res = append(res, parse.DecodeLogger(debug.Logger()))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.file != nil && cfg.file.format != nil {
		return *cfg.file.format
	}
	return format.TextFormat
}

// useColor decides coloring: the -color flag, then the config file,
// then whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.optSet("color") {
		return cfg.Color
	}
	if cfg.file != nil && cfg.file.color != nil {
		return *cfg.file.color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	switch {
	case cfg.optSet("indent"):
		res = append(res, encode.Indent(cfg.Indent))
	case cfg.file != nil && cfg.file.indent != nil:
		res = append(res, encode.Indent(*cfg.file.indent))
	}
	if cfg.outFormat().IsText() && cfg.useColor(w) {
		color.NoColor = false
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ExprConfig struct {
	*MainConfig
	Env  map[string]any
	Expr string `cli:"name=e desc='the expression to evaluate'"`

	ExprCmd *cli.Command
}
