package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/go-syrup/format"

	"github.com/BurntSushi/toml"
)

// DefaultsFile is the name of the defaults file in the home directory.
const DefaultsFile = ".syrup.toml"

// tomlDefaults is the layout of the defaults file.
type tomlDefaults struct {
	MaxDepth int    `toml:"max_depth"`
	Format   string `toml:"format"`
	Color    bool   `toml:"color"`
	Indent   int    `toml:"indent"`
}

// fileDefaults holds the settings present in the defaults file.
type fileDefaults struct {
	maxDepth *int
	format   *format.Format
	color    *bool
	indent   *int
}

// loadDefaults reads the file named by -config, or the default file if
// it exists.
func (cfg *MainConfig) loadDefaults() error {
	path := cfg.Config
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, DefaultsFile)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	fd, err := readDefaults(path)
	if err != nil {
		return err
	}
	theLog.Debug("loaded defaults", "path", path)
	cfg.file = fd
	return nil
}

func readDefaults(path string) (*fileDefaults, error) {
	var raw tomlDefaults
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load syrup defaults: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) != 0 {
		return nil, fmt.Errorf("load syrup defaults: unknown key %q in %s", undec[0].String(), path)
	}
	fd := &fileDefaults{}
	if meta.IsDefined("max_depth") {
		fd.maxDepth = &raw.MaxDepth
	}
	if meta.IsDefined("format") {
		f, err := format.ParseFormat(raw.Format)
		if err != nil {
			return nil, fmt.Errorf("load syrup defaults: %w", err)
		}
		fd.format = &f
	}
	if meta.IsDefined("color") {
		fd.color = &raw.Color
	}
	if meta.IsDefined("indent") {
		if raw.Indent < 0 {
			return nil, fmt.Errorf("load syrup defaults: negative indent %d", raw.Indent)
		}
		fd.indent = &raw.Indent
	}
	return fd, nil
}
