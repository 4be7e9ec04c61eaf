package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-syrup/format"
	"github.com/signadot/go-syrup/parse"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestViewFiles(t *testing.T) {
	cfg := &MainConfig{WireOut: true}
	buf := bytes.NewBuffer(nil)
	in := strings.NewReader("t[1+2+]")
	if err := viewFiles(cfg, buf, in, []string{"-"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "#t\n[1 2]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}

	yf := format.YAMLFormat
	cfg = &MainConfig{OutFormat: &yf}
	buf.Reset()
	p := writeFile(t, "in.syrup", `1+5"hello`)
	if err := viewFiles(cfg, buf, nil, []string{p}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "1\n---\nhello\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestViewDecodeError(t *testing.T) {
	cfg := &MainConfig{}
	err := viewFiles(cfg, bytes.NewBuffer(nil), strings.NewReader("[1+"), []string{"-"})
	if err == nil || !strings.Contains(err.Error(), "unexpected end") {
		t.Errorf("expected an unexpected end error, got %v", err)
	}
}

func TestQueryArg(t *testing.T) {
	cfg := &MainConfig{WireOut: true}
	p := writeFile(t, "in.syrup", `{1'a[1+2+]}{1'b0+}`)
	buf := bytes.NewBuffer(nil)
	n, err := queryArg(cfg, buf, nil, p, "$.a[1]", false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || buf.String() != "2\n" {
		t.Errorf("got %d %q", n, buf.String())
	}
	buf.Reset()
	n, err = queryArg(cfg, buf, nil, p, "$.a[*]", true, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || buf.String() != "[1 2]\n[]\n" {
		t.Errorf("got %d %q", n, buf.String())
	}
	for _, q := range []string{"$.a[5]", "$.a.x", "$.a<>", "$.c"} {
		buf.Reset()
		n, err = queryArg(cfg, buf, nil, p, q, false, 0)
		if err != nil {
			t.Errorf("%s: %v", q, err)
		}
		if n != 0 || buf.Len() != 0 {
			t.Errorf("%s: got %d %q", q, n, buf.String())
		}
	}
	if _, err := queryArg(cfg, buf, nil, p, "$.a[*]", false, 0); err == nil {
		t.Errorf("expected an error for [*] in get")
	}
}

func TestVerbose(t *testing.T) {
	defer setVerbose(false)
	ctx := context.Background()
	if theLog.Enabled(ctx, slog.LevelDebug) {
		t.Errorf("debug enabled by default")
	}
	setVerbose(true)
	if !theLog.Enabled(ctx, slog.LevelDebug) {
		t.Errorf("debug not enabled by -v")
	}
	setVerbose(false)
	if theLog.Enabled(ctx, slog.LevelDebug) {
		t.Errorf("debug still enabled")
	}
}

func TestEncOptsColor(t *testing.T) {
	on := true
	jf := format.JSONFormat
	cfg := &MainConfig{file: &fileDefaults{color: &on}}
	if got := len(cfg.encOpts(bytes.NewBuffer(nil))); got != 3 {
		t.Errorf("text: got %d options, want 3 with colors", got)
	}
	cfg.OutFormat = &jf
	if got := len(cfg.encOpts(bytes.NewBuffer(nil))); got != 2 {
		t.Errorf("json: got %d options, want 2 without colors", got)
	}
}

func TestDiffInputs(t *testing.T) {
	a, _, err := parse.DecodeString(`{1'a1+1'b2+}`)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := parse.DecodeString(`{1'a1+1'b3+}`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(cfg, buf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !differs || buf.String() != "~ $.b: 2 -> 3\n" {
		t.Errorf("got %v %q", differs, buf.String())
	}
	buf.Reset()
	differs, err = diffInputs(cfg, buf, a, a)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("equal inputs: %v %v %q", differs, err, buf.String())
	}
}

func TestExprFiles(t *testing.T) {
	cfg := &ExprConfig{
		MainConfig: &MainConfig{WireOut: true},
		Env:        map[string]any{},
		Expr:       "v.n * k",
	}
	if err := envFunc(cfg.Env, "k=3"); err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := exprFiles(cfg, buf, strings.NewReader(`{1'n2+}{1'n5+}`), []string{"-"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "6\n15\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"a.b=true", "a.c=[x, y]", "d=hi"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	want := map[string]any{
		"a": map[string]any{"b": true, "c": []any{"x", "y"}},
		"d": "hi",
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("expected an error")
	}
	if err := envFunc(env, "d.x=1"); err == nil {
		t.Error("expected an error descending into a scalar")
	}
}

func TestReadDefaults(t *testing.T) {
	p := writeFile(t, "syrup.toml", "max_depth = 8\nformat = \"json\"\ncolor = false\n")
	fd, err := readDefaults(p)
	if err != nil {
		t.Fatal(err)
	}
	if fd.maxDepth == nil || *fd.maxDepth != 8 {
		t.Errorf("max_depth: %v", fd.maxDepth)
	}
	if fd.format == nil || *fd.format != format.JSONFormat {
		t.Errorf("format: %v", fd.format)
	}
	if fd.color == nil || *fd.color {
		t.Errorf("color: %v", fd.color)
	}
	if fd.indent != nil {
		t.Errorf("indent should be unset")
	}

	cfg := &MainConfig{file: fd}
	if cfg.outFormat() != format.JSONFormat {
		t.Errorf("outFormat ignored defaults")
	}
	deep := strings.Repeat("[", 9) + strings.Repeat("]", 9)
	if _, _, err := parse.DecodeString(deep, cfg.parseOpts()...); err == nil {
		t.Error("max_depth ignored")
	}

	for _, bad := range []string{"format = \"xml\"\n", "indent = -1\n", "colour = true\n"} {
		if _, err := readDefaults(writeFile(t, "bad.toml", bad)); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}
