package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='print with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// useColor mirrors the -color flag against the output: the flag forces
// color on, otherwise color is used only when writing to a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type EventsConfig struct {
	*MainConfig

	N     int    `cli:"name=n desc='stop after n events'"`
	Until string `cli:"name=until desc='stop when the expression holds'"`

	Events *cli.Command
}

type DictConfig struct {
	*MainConfig

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	N int  `cli:"name=n desc='stop after n events'"`

	Dict *cli.Command
}

type EdgesConfig struct {
	*MainConfig

	N int `cli:"name=n desc='stop after n events'"`

	Edges *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Golden string `cli:"name=golden desc='golden json file to check against'"`

	Check *cli.Command
}
