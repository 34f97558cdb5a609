package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")

	if err := WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("b"), 0644); err == nil {
		t.Error("expected WriteFile to refuse to overwrite an existing file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a" {
		t.Errorf("existing file was overwritten: got %q", got)
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/abs/key.pem", "/other/config.toml"); got != "/abs/key.pem" {
		t.Errorf("absolute path should be returned unchanged, got %q", got)
	}
	if got := ResolvePath("key.pem", "/cfg/dir/config.toml"); got != "/cfg/dir/key.pem" {
		t.Errorf("relative path should resolve against the config's directory, got %q", got)
	}
}
