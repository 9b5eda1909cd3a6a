package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

// fmtFiles re-encodes each input. Invalid documents are written as their
// placeholder text, and make the command fail once every input is done.
func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Indent < 0 || cfg.Wrap < 0 {
		return fmt.Errorf("%w: -indent and -wrap must not be negative", cli.ErrUsage)
	}
	bad := 0
	for _, arg := range inputs(args) {
		d, err := readPath(cc, arg)
		if err != nil {
			return err
		}
		v := parse.Parse(d, cfg.parseOpts(arg)...)
		if v.Type() == ir.InvalidType {
			theLog.Warn("invalid input", "file", arg)
			bad++
		}
		if err := encode.EncodeTo(cc.Out, v, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
