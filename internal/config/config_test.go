package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jacoelho/dotselect/internal/document"
	"github.com/jacoelho/dotselect/internal/exit"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, exitResult := Parse([]string{"dotselect", "**.id"})
	if exitResult != nil {
		t.Fatalf("Parse returned exit result: %s", exitResult.Message)
	}

	if cfg.Path != "**.id" {
		t.Errorf("Path = %q, want %q", cfg.Path, "**.id")
	}
	if len(cfg.Files) != 0 {
		t.Errorf("Files = %v, want empty (stdin)", cfg.Files)
	}
	if cfg.FirstOnly || cfg.JSONPath || cfg.Raw || cfg.Compact {
		t.Error("boolean options should default to false")
	}
	if cfg.InputFormat != document.FormatAuto {
		t.Errorf("InputFormat = %d, want FormatAuto", cfg.InputFormat)
	}
	if cfg.OutputFormat != document.FormatJSON {
		t.Errorf("OutputFormat = %d, want FormatJSON", cfg.OutputFormat)
	}
}

func TestParseOptions(t *testing.T) {
	file := writeTempFile(t, "doc.yaml", "a: 1\n")

	cfg, exitResult := Parse([]string{
		"dotselect", "-first", "-jsonpath", "-raw", "-compact",
		"-input", "yaml", "-output", "yaml",
		"$.a", file,
	})
	if exitResult != nil {
		t.Fatalf("Parse returned exit result: %s", exitResult.Message)
	}

	if !cfg.FirstOnly || !cfg.JSONPath || !cfg.Raw || !cfg.Compact {
		t.Error("boolean options were not set")
	}
	if cfg.InputFormat != document.FormatYAML {
		t.Errorf("InputFormat = %d, want FormatYAML", cfg.InputFormat)
	}
	if cfg.OutputFormat != document.FormatYAML {
		t.Errorf("OutputFormat = %d, want FormatYAML", cfg.OutputFormat)
	}
	if cfg.Path != "$.a" {
		t.Errorf("Path = %q, want %q", cfg.Path, "$.a")
	}
	if len(cfg.Files) != 1 || cfg.Files[0] != file {
		t.Errorf("Files = %v, want [%s]", cfg.Files, file)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no_arguments", args: nil},
		{name: "missing_path", args: []string{"dotselect"}},
		{name: "unknown_flag", args: []string{"dotselect", "-bogus", "a"}},
		{name: "bad_input_format", args: []string{"dotselect", "-input", "toml", "a"}},
		{name: "bad_output_format", args: []string{"dotselect", "-output", "toml", "a"}},
		{name: "auto_output_rejected", args: []string{"dotselect", "-output", "auto", "a"}},
		{name: "missing_file", args: []string{"dotselect", "a", "does-not-exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, exitResult := Parse(tt.args)
			if cfg != nil {
				t.Fatalf("Parse returned config %+v, want nil", cfg)
			}
			if exitResult == nil {
				t.Fatal("Parse returned no exit result")
			}
			if exitResult.ExitCode != exit.CodeError {
				t.Errorf("ExitCode = %d, want %d", exitResult.ExitCode, exit.CodeError)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	cfg, exitResult := Parse([]string{"dotselect", "-h"})
	if cfg != nil {
		t.Fatal("Parse returned config for -h")
	}
	if exitResult == nil || exitResult.ExitCode != exit.CodeSuccess {
		t.Fatalf("help should exit successfully, got %+v", exitResult)
	}
}
