package main

import (
	"fmt"
	"io"

	"github.com/xmliter/go-xmliter/stream"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func events(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		cfg.Events.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var until *vm.Program
	if cfg.Until != "" {
		until, err = expr.Compile(cfg.Until, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -until expression: %v", cli.ErrUsage, err)
		}
	}
	for _, arg := range argsOrStdin(args) {
		if err := eventsArg(cfg, cc.Out, arg, until); err != nil {
			return err
		}
	}
	return nil
}

func eventsArg(cfg *EventsConfig, w io.Writer, arg string, until *vm.Program) error {
	r, closeArg, err := openArg(arg)
	if err != nil {
		return err
	}
	defer closeArg()
	kind := kindPrinter(cfg.useColor(w))
	dec := stream.NewDecoder(r)
	n := 0
	for cfg.N == 0 || n < cfg.N {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		n++
		if until != nil {
			stop, err := expr.Run(until, map[string]any{
				"index": ev.Index,
				"kind":  ev.Type.String(),
				"value": ev.Value,
				"depth": dec.Depth(),
			})
			if err != nil {
				return fmt.Errorf("error evaluating -until on %s: %w", arg, err)
			}
			if stop.(bool) {
				return nil
			}
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%q\n", ev.Index, kind(ev.Type), ev.Value); err != nil {
			return err
		}
	}
	return nil
}

func kindPrinter(colored bool) func(stream.EventType) string {
	if !colored {
		return func(t stream.EventType) string { return t.String() }
	}
	kindColors := map[stream.EventType]func(string, ...any) string{
		stream.EventStart: color.GreenString,
		stream.EventEnd:   color.RedString,
		stream.EventText:  color.CyanString,
		stream.EventEmpty: color.YellowString,
	}
	return func(t stream.EventType) string {
		f := kindColors[t]
		if f == nil {
			return t.String()
		}
		return f(t.String())
	}
}
