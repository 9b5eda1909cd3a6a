package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/patch"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Create {
		return createPatch(cfg, cc, args)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch document", cli.ErrUsage)
	}
	p, err := cfg.load(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	for _, arg := range inputs(args[1:]) {
		target, err := cfg.load(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		apply := patch.Apply
		if cfg.Merge {
			apply = patch.Merge
		}
		res, err := apply(target, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := encode.EncodeTo(cc.Out, res, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func createPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch -create requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := cfg.load(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.load(cc, args[1])
	if err != nil {
		return err
	}
	res, err := patch.CreateMerge(from, to)
	if err != nil {
		return err
	}
	return encode.EncodeTo(cc.Out, res, cfg.encOpts(cc.Out)...)
}
