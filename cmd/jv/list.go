package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := queryPath("get", args)
	if err != nil {
		return err
	}
	for _, arg := range inputs(args) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := queryPath("list", args)
	if err != nil {
		return err
	}
	for _, arg := range inputs(args) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, true); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryPath(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, query string, list bool) error {
	target, err := cfg.load(cc, arg)
	if err != nil {
		return err
	}
	w := cc.Out
	if list {
		res, err := target.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		return encode.EncodeTo(w, ir.FromSlice(res), cfg.encOpts(w)...)
	}
	res, err := target.GetPath(query)
	if err != nil {
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	if res == nil {
		// absent, not an error
		return nil
	}
	return encode.EncodeTo(w, res, cfg.encOpts(w)...)
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputs(args) {
		v, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		if v.Type() != ir.ObjectType {
			return fmt.Errorf("%s: expected Object, got %s", arg, v.Type())
		}
		for _, k := range v.Keys() {
			fmt.Fprintln(cc.Out, k)
		}
	}
	return nil
}
