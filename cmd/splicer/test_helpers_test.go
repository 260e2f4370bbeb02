package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"splicer/internal/srt"
	"splicer/internal/word"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// missingConfigPath points --config at a file that does not exist, so commands
// run on pure defaults instead of whatever config the host machine carries.
func missingConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "no-such-config.toml")
}

func writeSRT(t *testing.T, dir, name string, words []word.Word) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, srt.Format(words), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func timedWord(text string, startMs, endMs int64) word.Word {
	return word.FromMillis(text, startMs, endMs)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q to not contain %q", output, substr)
	}
}
