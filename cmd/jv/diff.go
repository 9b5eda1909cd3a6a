package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.load(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := cfg.load(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	w := cc.Out
	if cfg.Paths {
		changes := libdiff.Changes(a, b)
		for i := range changes {
			c := &changes[i]
			fmt.Fprintf(w, "%s: %s -> %s\n", c.Path, side(c.From), side(c.To))
		}
		if len(changes) != 0 {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	lines := libdiff.Lines(a, b)
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := libdiff.Render(w, lines, cfg.useColor(w)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// side renders one side of a change, "-" standing for absence.
func side(v *ir.Value) string {
	if v == nil {
		return "-"
	}
	return encode.Encode(v)
}
