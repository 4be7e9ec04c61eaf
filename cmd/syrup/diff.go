package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc.In, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc.In, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	paint := func(_ libdiff.Op, s string) string { return s }
	if cfg.useColor(w) {
		color.NoColor = false
		paint = func(op libdiff.Op, s string) string {
			switch op {
			case libdiff.Insert:
				return color.GreenString("%s", s)
			case libdiff.Delete:
				return color.RedString("%s", s)
			default:
				return color.YellowString("%s", s)
			}
		}
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, paint(c.Op, c.String())); err != nil {
			return false, err
		}
	}
	theLog.Debug("diff", "changes", len(changes))
	return true, nil
}
