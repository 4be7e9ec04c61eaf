package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-syrup/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func exprMain(cfg *ExprConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ExprCmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: expr requires -e <expression>", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return exprFiles(cfg, cc.Out, cc.In, args)
}

func exprFiles(cfg *ExprConfig, w io.Writer, stdin io.Reader, files []string) error {
	opts := cfg.encOpts(w)
	n := 0
	for _, file := range files {
		nodes, err := readValues(stdin, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, node := range nodes {
			res, err := eval.Eval(node, cfg.Expr, cfg.Env)
			if err != nil {
				return fmt.Errorf("error evaluating value %d of %s: %w", i, file, err)
			}
			if err := writeValue(cfg.MainConfig, w, res, n, opts); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

// envFunc binds key=val in env, where key may be a dotted path into
// nested maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
