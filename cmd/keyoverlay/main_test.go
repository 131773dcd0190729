package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output = %q, want it to contain %q", out, Version)
	}
}

func TestConfigPathUsesFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	out, err := execute(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got := strings.TrimSpace(out); got != path {
		t.Errorf("config path = %q, want %q", got, path)
	}
}

func TestConfigPathUsesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv("KEYOVERLAY_CONFIG", path)
	out, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got := strings.TrimSpace(out); got != path {
		t.Errorf("config path = %q, want %q", got, path)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if _, err := execute(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := execute(t, "--config", path, "config", "init"); err == nil {
		t.Error("config init over an existing file should fail without --force")
	}
	if _, err := execute(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}

	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"key_size", "scroll_speed", "K1"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("key_size = \"big\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--config", path, "config", "show"); err == nil {
		t.Error("config show with a malformed file should fail")
	}
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 26 {
		t.Errorf("keys listed %d names, want at least 26", len(lines))
	}

	if _, err := execute(t, "keys", "qqqqqqqqqq"); err == nil {
		t.Error("keys with a query matching nothing should fail")
	}
}

func TestKeysCommandFilter(t *testing.T) {
	out, err := execute(t, "keys", "space")
	if err != nil {
		t.Fatalf("keys space: %v", err)
	}
	if !strings.Contains(strings.ToLower(out), "space") {
		t.Errorf("keys space output = %q, want a Space entry", out)
	}
}
