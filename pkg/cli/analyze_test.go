package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnalyzeCmdStructure(t *testing.T) {
	cmd := analyzeCmd()

	if cmd.Name != "analyze" {
		t.Errorf("expected command name analyze, got %s", cmd.Name)
	}

	flagNames := map[string]bool{}
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			flagNames[n] = true
		}
	}

	for _, want := range []string{"file", "f", "language", "l", "format", "output", "o"} {
		if !flagNames[want] {
			t.Errorf("expected flag %q to be defined", want)
		}
	}
}

func TestAnalyzeCmdUnknownFormat(t *testing.T) {
	snippet := filepath.Join(t.TempDir(), "snippet.py")
	if err := os.WriteFile(snippet, []byte("for i in range(n): pass"), 0o600); err != nil {
		t.Fatalf("failed to write snippet: %v", err)
	}

	root := New()
	err := root.Run(context.Background(), []string{
		"bigod", "analyze",
		"--file", snippet,
		"--language", "python",
		"--format", "xml",
	})

	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAnalyzeCmdMissingFile(t *testing.T) {
	root := New()
	err := root.Run(context.Background(), []string{
		"bigod", "analyze",
		"--file", filepath.Join(t.TempDir(), "does-not-exist.py"),
		"--language", "python",
	})

	if err == nil {
		t.Fatal("expected error for missing snippet file")
	}
	if !strings.Contains(err.Error(), "failed to read code snippet") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAnalyzeCmdUnconfigured(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")

	snippet := filepath.Join(t.TempDir(), "snippet.py")
	if err := os.WriteFile(snippet, []byte("for i in range(n): pass"), 0o600); err != nil {
		t.Fatalf("failed to write snippet: %v", err)
	}

	// Run from a directory without a .env file so godotenv cannot
	// resurrect the key.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	root := New()
	err = root.Run(context.Background(), []string{
		"bigod", "analyze",
		"--file", snippet,
		"--language", "python",
	})

	if err == nil {
		t.Fatal("expected error when model is not configured")
	}
	if !strings.Contains(err.Error(), "model client unavailable") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadSnippet(t *testing.T) {
	snippet := filepath.Join(t.TempDir(), "snippet.go")
	content := "func f(n int) int { return n }"
	if err := os.WriteFile(snippet, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write snippet: %v", err)
	}

	got, err := readSnippet(snippet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("expected snippet content %q, got %q", content, got)
	}
}
