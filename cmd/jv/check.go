package main

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jv/ir"
	"github.com/signadot/jv/parse"
)

type checkResult struct {
	typ ir.Type
	err error
}

// check decodes its inputs concurrently and reports them in input order.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = inputs(args)
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	pool, err := ants.NewPool(jobs)
	if err != nil {
		return fmt.Errorf("error creating pool: %w", err)
	}
	defer pool.Release()

	results := make([]checkResult, len(args))
	wg := &sync.WaitGroup{}
	for i, arg := range args {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = checkOne(cfg.MainConfig, cc, arg)
		})
		if err != nil {
			wg.Done()
			results[i].err = err
		}
	}
	wg.Wait()

	bad := 0
	for i, res := range results {
		status := "ok"
		switch {
		case res.err != nil:
			theLog.Error("check failed", "file", args[i], "error", res.err)
			status = "error"
			bad++
		case res.typ == ir.InvalidType:
			status = "invalid"
			bad++
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: %s\n", args[i], status)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkOne(cfg *MainConfig, cc *cli.Context, path string) checkResult {
	d, err := readPath(cc, path)
	if err != nil {
		return checkResult{err: err}
	}
	return checkResult{typ: parse.Parse(d, cfg.parseOpts(path)...).Type()}
}
