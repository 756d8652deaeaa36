package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/xmliter/go-xmliter/dict"
	"github.com/xmliter/go-xmliter/ir"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Golden == "" {
		return fmt.Errorf("%w: check requires -golden", cli.ErrUsage)
	}
	d, err := os.ReadFile(cfg.Golden)
	if err != nil {
		return fmt.Errorf("error reading golden %s: %w", cfg.Golden, err)
	}
	golden, err := ir.FromJSON(d)
	if err != nil {
		return fmt.Errorf("error decoding golden %s: %w", cfg.Golden, err)
	}
	failed := false
	for _, arg := range argsOrStdin(args) {
		ok, err := checkArg(cfg, cc.Out, arg, golden)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkArg(cfg *CheckConfig, w io.Writer, arg string, golden *ir.Node) (bool, error) {
	r, closeArg, err := openArg(arg)
	if err != nil {
		return false, err
	}
	defer closeArg()
	res := dict.FromReader(r)
	if res.Err != nil {
		fmt.Fprintf(w, "%s: parse failed: %v\n", arg, res.Err)
		return false, nil
	}
	if ir.Equal(res.Root, golden) {
		return true, nil
	}
	gotJSON, err := indentedJSON(res.Root)
	if err != nil {
		return false, err
	}
	wantJSON, err := indentedJSON(golden)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "%s: mismatch against %s:\n", arg, cfg.Golden)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(wantJSON, gotJSON, true)
	if cfg.useColor(w) {
		fmt.Fprintln(w, diffCfg.DiffPrettyText(diffs))
		return false, nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprintf(w, "-%s", d.Text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(w, "+%s", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(w, d.Text)
		}
	}
	fmt.Fprintln(w)
	return false, nil
}

func indentedJSON(y *ir.Node) (string, error) {
	var buf bytes.Buffer
	d, err := y.MarshalJSON()
	if err != nil {
		return "", err
	}
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
