package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-syrup/ir"
	"github.com/signadot/go-syrup/parse"
)

func openArg(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, f.Close, nil
}

// readValues decodes every value in the file at path, or in stdin if
// path is "-".
func readValues(stdin io.Reader, path string, opts ...parse.DecodeOption) ([]*ir.Node, error) {
	r, closer, err := openArg(path, stdin)
	if err != nil {
		return nil, err
	}
	defer closer()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.DecodeAll(d, opts...)
}

// getObjFile decodes the first value in the file at path.
func getObjFile(stdin io.Reader, path string, opts ...parse.DecodeOption) (*ir.Node, error) {
	r, closer, err := openArg(path, stdin)
	if err != nil {
		return nil, err
	}
	defer closer()
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	node, _, err := parse.Decode(d, opts...)
	return node, err
}
