package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jsonwire/jsonwire-go/stream"
)

func jwMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = closeOut(cfg, err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if len(args) == 0 {
		return convert(cc.Out, os.Stdin, opts...)
	}
	for _, arg := range args {
		if err := convertArg(cc.Out, arg, opts...); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

// closeOut closes the -o output file, if any, keeping the first error.
func closeOut(cfg *MainConfig, err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	if err == nil {
		return cerr
	}
	return err
}

func convertArg(w io.Writer, arg string, opts ...stream.Option) error {
	if arg == "-" {
		return convert(w, os.Stdin, opts...)
	}
	f, err := os.Open(arg)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	return convert(w, f, opts...)
}
