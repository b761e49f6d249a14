package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/polywire/encode"
	"github.com/signadot/polywire/format"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Indent  string `cli:"name=indent desc='indent wire output by this string per level'"`
	Verbose bool   `cli:"name=v desc='log what is done to stderr'"`

	W bool `cli:"name=w aliases=wire desc='do i/o in the wire format'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

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

// flagFormat returns the format selected by -w, -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.W:
		return format.WireFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.WireFormat, false
}

// inFormat returns the format in which to read path.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.flagFormat()
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

func (cfg *MainConfig) logLevel() slog.Level {
	if cfg.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report errors'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Filter bool `cli:"name=filter desc='keep the array elements for which the expression is true'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Ops    bool `cli:"name=ops desc='show available operations'"`

	Patch *cli.Command
}
