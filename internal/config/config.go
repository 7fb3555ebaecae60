package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/dotselect/internal/document"
	"github.com/jacoelho/dotselect/internal/exit"
)

var (
	ErrNoArguments = errors.New("no arguments provided")
	ErrNoPath      = errors.New("no path expression specified")
)

// Config represents the complete configuration for the dotselect tool.
type Config struct {
	// Query
	Path      string
	FirstOnly bool
	JSONPath  bool // interpret Path as an RFC 9535 JSONPath expression

	// Input
	Files       []string // empty means stdin
	InputFormat document.Format

	// Output
	OutputFormat document.Format
	Raw          bool
	Compact      bool
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}

	for _, file := range c.Files {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("input file %s not found: %w", file, err)
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		first    = fs.Bool("first", false, "Print only the first match and fail when there is none")
		jsonPath = fs.Bool("jsonpath", false, "Interpret the expression as an RFC 9535 JSONPath instead of a dotpath")
		input    = fs.String("input", "auto", "Input format: json, yaml or auto")
		output   = fs.String("output", "json", "Output format: json or yaml")
		raw      = fs.Bool("raw", false, "Print string matches without quotes")
		compact  = fs.Bool("compact", false, "Print JSON matches on a single line instead of indented")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoPath, Usage())
	}

	inputFormat, err := document.ParseFormat(*input)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	outputFormat, err := document.ParseFormat(*output)
	if err != nil || outputFormat == document.FormatAuto {
		return nil, exit.Errorf("Error: output format must be json or yaml, got %q\n\n%s", *output, Usage())
	}

	config := &Config{
		Path:         rest[0],
		Files:        rest[1:],
		FirstOnly:    *first,
		JSONPath:     *jsonPath,
		InputFormat:  inputFormat,
		OutputFormat: outputFormat,
		Raw:          *raw,
		Compact:      *compact,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `dotselect - query nested JSON/YAML documents with dotpath expressions

Usage: dotselect [options] <path> [file ...]

Reads from stdin when no files are given.

Path syntax:
  name              exact mapping key
  N                 exact sequence index
  *                 all children, one level
  **                the node and all descendants, any depth
  name[key=value]   keep sequence elements whose key equals value

Options:
  --first           Print only the first match; exit 2 when there is none
  --jsonpath        Interpret the expression as an RFC 9535 JSONPath
  --input FORMAT    Input format: json, yaml or auto (default: auto)
  --output FORMAT   Output format: json or yaml (default: json)
  --raw             Print string matches without quotes
  --compact         Print JSON matches on a single line instead of indented
  -h, --help        Show this help message

Exit codes:
  0  query ran (matches printed, possibly none)
  1  usage, input or path syntax error
  2  --first found no match

Examples:
  dotselect '**.id' project.json               # every id field, any depth
  dotselect 'spec.components.*.name' app.yaml  # name of each component
  dotselect --first '**.version' app.yaml      # first version field
  dotselect 'spec.components[type=server]' app.yaml
  cat app.json | dotselect --output yaml 'spec'`
}
