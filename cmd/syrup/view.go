package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-syrup/encode"
	"github.com/signadot/go-syrup/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg.MainConfig, cc.Out, cc.In, args)
}

func viewFiles(cfg *MainConfig, w io.Writer, stdin io.Reader, files []string) error {
	opts := cfg.encOpts(w)
	n := 0
	for _, file := range files {
		nodes, err := readValues(stdin, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for _, node := range nodes {
			if err := writeValue(cfg, w, node, n, opts); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

// writeValue encodes the i'th value of the output, preceded by a
// document separator in yaml.
func writeValue(cfg *MainConfig, w io.Writer, node *ir.Node, i int, opts []encode.EncodeOption) error {
	if i > 0 && cfg.outFormat().IsYAML() {
		if err := writeSep(w); err != nil {
			return err
		}
	}
	if err := encode.Encode(node, w, opts...); err != nil {
		return fmt.Errorf("error encoding value %d: %w", i, err)
	}
	return nil
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	if err != nil {
		return fmt.Errorf("unable to write separator: %w", err)
	}
	return nil
}
