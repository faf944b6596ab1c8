package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jsonwire/jsonwire-go/stream"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jw").
		WithSynopsis("jw [opts] [files]").
		WithDescription("jw streams YAML documents to JSON output.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jwMain(cfg, cc, args)
		})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []stream.Option {
	useColor := cfg.Color
	if !useColor {
		if f, ok := w.(*os.File); ok {
			useColor = isatty.IsTerminal(f.Fd())
		}
	}
	if !useColor {
		return nil
	}
	return []stream.Option{stream.WithColors(stream.DefaultColors())}
}
