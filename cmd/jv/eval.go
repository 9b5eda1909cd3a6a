package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/encode"
	"github.com/signadot/jv/eval"
	"github.com/signadot/jv/ir"
)

func evalFiles(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	expression := ""
	if !cfg.Expand {
		if len(args) == 0 {
			return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
		}
		expression = args[0]
		args = args[1:]
	}
	allTrue := true
	for _, arg := range inputs(args) {
		doc, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		var res *ir.Value
		if cfg.Expand {
			res, err = eval.Expand(doc, cfg.Env)
		} else {
			res, err = eval.EvalEnv(expression, doc, cfg.Env)
		}
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		allTrue = allTrue && ir.Truth(res)
		if cfg.Truth {
			continue
		}
		if err := encode.EncodeTo(cc.Out, res, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	if cfg.Truth && !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// envFunc binds key=val in env, where val is decoded as YAML (and so as
// JSON) and key may be a dotted path into nested maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
