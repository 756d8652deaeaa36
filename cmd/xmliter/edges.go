package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/xmliter/go-xmliter/edges"

	"github.com/scott-cotton/cli"
)

func edgesCmd(cfg *EdgesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edges.Parse(cc, args)
	if err != nil {
		cfg.Edges.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		if err := edgesArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func edgesArg(cfg *EdgesConfig, w io.Writer, arg string) error {
	r, closeArg, err := openArg(arg)
	if err != nil {
		return err
	}
	defer closeArg()
	var opts []edges.Option
	if cfg.N > 0 {
		opts = append(opts, edges.WithMaxEvents(uint64(cfg.N)))
	}
	res := edges.CountReader(r, opts...)
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v; counts are partial\n", arg, res.Err)
	}
	keys := make([]edges.Edge, 0, len(res.Edges))
	for e := range res.Edges {
		keys = append(keys, e)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Parent != keys[j].Parent {
			return keys[i].Parent < keys[j].Parent
		}
		return keys[i].Child < keys[j].Child
	})
	for _, e := range keys {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", e.Parent, e.Child, res.Edges[e]); err != nil {
			return err
		}
	}
	return nil
}
