package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/cs2dec/internal/pipeline"
)

func runCmd(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestCatalogCommand(t *testing.T) {
	out, _, code := runCmd(t, "catalog")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"NAME", "WIRE", "Sprite", "(0,1,0)", "??", "0xA7", "0xD0"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %q", want)
		}
	}
}

func TestCompactCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"compact", "s"}, "string"},
		{[]string{"compact", "Q"}, "int"},
		{[]string{"compact"}, "??"},
		{[]string{"compact", "-byte", "208"}, "DbRow"},
	}
	for _, tt := range tests {
		out, stderr, code := runCmd(t, tt.args...)
		if code != 0 {
			t.Errorf("%v: exit %d: %s", tt.args, code, stderr)
			continue
		}
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, out, tt.want)
		}
	}
	if _, _, code := runCmd(t, "compact", "ab"); code != 2 {
		t.Errorf("multi-character compact exit = %d, want 2", code)
	}
}

func TestDescCommand(t *testing.T) {
	out, _, code := runCmd(t, "desc", "Pair{int, string}")
	if code != 0 || strings.TrimSpace(out) != "int, string (1,1,0)" {
		t.Errorf("desc = %q (exit %d)", out, code)
	}

	out, _, code = runCmd(t, "desc", "-dump", "Sprite")
	if code != 0 || !strings.Contains(out, "Atomic") {
		t.Errorf("desc -dump = %q (exit %d)", out, code)
	}

	out, _, code = runCmd(t, "desc", "-interned", "A{Model, NpcDef}", "B{NpcDef, Model}", "A{Model, NpcDef}")
	if code != 0 {
		t.Fatalf("desc -interned exit %d", code)
	}
	if !strings.Contains(out, "{Model, NpcDef} (2,0,0)") || !strings.Contains(out, "{NpcDef, Model} (2,0,0)") {
		t.Errorf("desc -interned = %q", out)
	}
	if strings.Count(out, "{Model, NpcDef}") != 1 {
		t.Errorf("composite listed more than once: %q", out)
	}

	if _, _, code := runCmd(t, "desc", "nope"); code != 1 {
		t.Errorf("unknown descriptor exit = %d, want 1", code)
	}
}

func TestCastCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
		code int
	}{
		{[]string{"cast", "-int", "-1", "boolean"}, "null : int", 0},
		{[]string{"cast", "-int", "0", "boolean"}, "false : boolean", 0},
		{[]string{"cast", "-int", "7", "Sprite"}, "7 : int", 0},
		{[]string{"cast", "-int", "65", "char"}, "'A' : char", 0},
		{[]string{"cast", "-int", "16711680", "Color"}, "0xFF0000 : Color", 0},
		{[]string{"cast", "-var", "Sprite", "Model"}, "(Model) v0 : Model", 0},
		{[]string{"cast", "-var", "Color", "int"}, "v0 : Color", 0},
		{[]string{"cast", "-var", "string", "int"}, "", 1},
		{[]string{"cast", "-int", "9999999999", "int"}, "", 2},
		{[]string{"cast", "-var", "nope", "int"}, "", 2},
		{[]string{"cast", "-int", "1", "-var", "string", "-int", "-1", "boolean", "string", "Sprite"}, "true : boolean\nv1 : string\nnull : int", 0},
		{[]string{"cast", "-int", "1", "-var", "string", "int", "int"}, "", 1},
		{[]string{"cast", "-int", "1", "-int", "2", "int"}, "", 1},
	}
	for _, tt := range tests {
		out, stderr, code := runCmd(t, tt.args...)
		if code != tt.code {
			t.Errorf("%v: exit %d, want %d (%s)", tt.args, code, tt.code, stderr)
			continue
		}
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestAttrsCommand(t *testing.T) {
	dir := t.TempDir()
	params := "params:\n  - id: 20\n    type: o\n  - id: 10\n    type: s\n"
	if err := os.WriteFile(filepath.Join(dir, "params.yaml"), []byte(params), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "cs2types.yaml")
	if err := os.WriteFile(cfg, []byte("params:\n  source: yaml\n  path: params.yaml\ncolor: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, stderr, code := runCmd(t, "attrs", "-config", cfg)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "10") || !strings.Contains(lines[0], "string") {
		t.Errorf("attrs output = %q", out)
	}

	out, _, code = runCmd(t, "attrs", "-config", cfg, "-id", "20")
	if code != 0 || strings.TrimSpace(out) != "20\tItem" {
		t.Errorf("attrs -id = %q (exit %d)", out, code)
	}

	if _, _, code := runCmd(t, "attrs", "-config", filepath.Join(dir, "missing.yaml")); code != 1 {
		t.Errorf("missing config exit = %d, want 1", code)
	}
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("disk gone") }

func TestCloseContextLogsError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	ctx := pipeline.NewContext("unused")
	closeContext(ctx)
	if buf.Len() != 0 {
		t.Errorf("clean close should not log, got %q", buf.String())
	}

	ctx.AddCloser(failingCloser{})
	closeContext(ctx)
	if !strings.Contains(buf.String(), "Error closing params store: disk gone") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, stderr, code := runCmd(t, "frobnicate"); code != 2 || !strings.Contains(stderr, "Usage") {
		t.Errorf("exit %d, stderr %q", code, stderr)
	}
	if _, _, code := runCmd(t); code != 2 {
		t.Errorf("no args exit = %d", code)
	}
}
