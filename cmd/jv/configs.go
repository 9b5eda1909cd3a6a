package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/format"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

var errInvalid = errors.New("invalid input")

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Depth int  `cli:"name=depth desc='maximum nesting depth of input'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// parseOpts decides the input format from -I, falling back to the
// extension of path.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	f := format.FromPath(path)
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	res := []parse.ParseOption{parse.ParseFormat(f)}
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honors an explicit -color and otherwise colors output only when
// w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func readPath(cc *cli.Context, path string) ([]byte, error) {
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
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// load reads and decodes path, treating an Invalid result as an error.
func (cfg *MainConfig) load(cc *cli.Context, path string) (*ir.Value, error) {
	d, err := readPath(cc, path)
	if err != nil {
		return nil, err
	}
	v := parse.Parse(d, cfg.parseOpts(path)...)
	if v.Type() == ir.InvalidType {
		return nil, fmt.Errorf("%w: %s", errInvalid, path)
	}
	return v, nil
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type FmtConfig struct {
	*MainConfig
	Pretty bool `cli:"name=pretty aliases=p desc='wrap containers wider than the threshold'"`
	Indent int  `cli:"name=indent desc='spaces per indentation level'"`
	Wrap   int  `cli:"name=wrap desc='wrap threshold in columns'"`
	ASCII  bool `cli:"name=ascii desc='escape non-ASCII characters'"`

	Fmt *cli.Command
}

func (cfg *FmtConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return append(cfg.MainConfig.encOpts(w),
		encode.Reencode(true),
		encode.Pretty(cfg.Pretty),
		encode.Indent(cfg.Indent),
		encode.WrapThreshold(cfg.Wrap),
		encode.EscapeNonASCII(cfg.ASCII))
}

type CheckConfig struct {
	*MainConfig
	Jobs  int  `cli:"name=j desc='number of files to check at once'"`
	Quiet bool `cli:"name=q desc='report only through the exit status'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Paths bool `cli:"name=paths desc='show changed paths instead of lines'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge aliases=m desc='apply an RFC 7386 merge patch'"`
	Create bool `cli:"name=create desc='print the merge patch between two files'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x desc='expand .[expr] and $[expr] in the strings of the input'"`
	Truth  bool `cli:"name=t desc='exit 1 unless the result is truthy'"`

	Eval *cli.Command
}
