package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/xmliter/go-xmliter/dict"
	"github.com/xmliter/go-xmliter/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dictCmd(cfg *DictConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dict.Parse(cc, args)
	if err != nil {
		cfg.Dict.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	for _, arg := range argsOrStdin(args) {
		if err := dictArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func dictArg(cfg *DictConfig, w io.Writer, arg string) error {
	r, closeArg, err := openArg(arg)
	if err != nil {
		return err
	}
	defer closeArg()
	var opts []dict.Option
	if cfg.N > 0 {
		opts = append(opts, dict.WithMaxEvents(uint64(cfg.N)))
	}
	res := dict.FromReader(r, opts...)
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v; result is partial\n", arg, res.Err)
	}
	if cfg.Y {
		return writeYAML(w, res.Root)
	}
	return writeJSON(w, res.Root)
}

func writeJSON(w io.Writer, root *ir.Node) error {
	d, err := root.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeYAML(w io.Writer, root *ir.Node) error {
	d, err := yaml.Marshal(yamlValue(root))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// yamlValue maps a node to the yaml package's types, keeping object
// fields in document order via MapSlice.
func yamlValue(y *ir.Node) any {
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.StringType:
		return y.String
	case ir.ArrayType:
		res := make([]any, 0, len(y.Values))
		for _, v := range y.Values {
			res = append(res, yamlValue(v))
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(y.Fields))
		for i, f := range y.Fields {
			res = append(res, yaml.MapItem{Key: f, Value: yamlValue(y.Values[i])})
		}
		return res
	}
	return nil
}
