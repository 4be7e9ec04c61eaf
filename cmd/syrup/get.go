package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-syrup/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return queryArgs(cfg.MainConfig, cc, args, false)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return queryArgs(cfg.MainConfig, cc, args, true)
}

func queryArgs(cfg *MainConfig, cc *cli.Context, args []string, list bool) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	n := 0
	for _, file := range files {
		count, err := queryArg(cfg, cc.Out, cc.In, file, path, list, n)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		n += count
	}
	return nil
}

// queryArg applies query to every value in file.  n is the number of
// values written so far; it returns the number written.
func queryArg(cfg *MainConfig, w io.Writer, stdin io.Reader, file, query string, list bool, n int) (int, error) {
	nodes, err := readValues(stdin, file, cfg.parseOpts()...)
	if err != nil {
		return 0, fmt.Errorf("error decoding %s: %w", file, err)
	}
	opts := cfg.encOpts(w)
	count := 0
	for _, target := range nodes {
		var res *ir.Node
		if list {
			matches, err := target.ListPath(nil, query)
			if err != nil {
				return count, fmt.Errorf("error executing list on %s: %w", file, err)
			}
			res = ir.FromSlice(matches)
		} else {
			res, err = target.GetPath(query)
			if errors.Is(err, ir.ErrNoValue) {
				continue
			}
			if err != nil {
				return count, fmt.Errorf("error executing get on %s: %w", file, err)
			}
			if res == nil {
				// nothing at the path is not an error
				continue
			}
		}
		if err := writeValue(cfg, w, res, n+count, opts); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
