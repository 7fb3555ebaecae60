package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/dotselect/internal/config"
	"github.com/jacoelho/dotselect/internal/document"
	"github.com/jacoelho/dotselect/internal/dotpath"
	"github.com/jacoelho/dotselect/internal/exit"
	"github.com/jacoelho/dotselect/internal/extractor"
	"github.com/jacoelho/dotselect/internal/formatter"
)

// Runner executes one query over the configured inputs and writes matches
// to stdout.
type Runner struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
}

func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// Run compiles the expression, then decodes and queries each input in
// order. The expression is compiled before any input is read so syntax
// errors never depend on document content.
func (r *Runner) Run() *exit.Result {
	var (
		path     *dotpath.Path
		jsonPath *extractor.Query
	)
	if r.cfg.JSONPath {
		compiled, err := extractor.Compile(r.cfg.Path)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		jsonPath = compiled
	} else {
		parsed, err := dotpath.Parse(r.cfg.Path)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		path = parsed
	}

	out := formatter.New(r.stdout, r.cfg.OutputFormat, r.cfg.Raw, r.cfg.Compact)
	matched := false

	for _, input := range r.inputs() {
		doc, errResult := r.decode(input)
		if errResult != nil {
			return errResult
		}

		found, errResult := r.query(doc, path, jsonPath, out)
		if errResult != nil {
			return errResult
		}

		if found {
			matched = true
			if r.cfg.FirstOnly {
				break
			}
		}
	}

	if r.cfg.FirstOnly && !matched {
		return exit.NoMatch(fmt.Sprintf("no match for %s\n", r.cfg.Path))
	}

	return exit.Success("")
}

type input struct {
	name string // empty for stdin
}

func (r *Runner) inputs() []input {
	if len(r.cfg.Files) == 0 {
		return []input{{}}
	}

	inputs := make([]input, len(r.cfg.Files))
	for i, file := range r.cfg.Files {
		inputs[i] = input{name: file}
	}
	return inputs
}

func (r *Runner) decode(in input) (any, *exit.Result) {
	var (
		data []byte
		err  error
	)
	if in.name == "" {
		data, err = io.ReadAll(r.stdin)
	} else {
		data, err = os.ReadFile(in.name)
	}
	if err != nil {
		return nil, exit.Errorf("Error: reading %s: %v\n", in.describe(), err)
	}

	format := r.cfg.InputFormat
	if format == document.FormatAuto {
		format = document.DetectFormat(in.name, data)
	}

	doc, err := document.Decode(data, format)
	if err != nil {
		return nil, exit.Errorf("Error: decoding %s: %v\n", in.describe(), err)
	}

	return doc, nil
}

func (in input) describe() string {
	if in.name == "" {
		return "stdin"
	}
	return in.name
}

// query writes matches from a single document and reports whether at least
// one was found.
func (r *Runner) query(doc any, path *dotpath.Path, jsonPath *extractor.Query, out *formatter.Formatter) (bool, *exit.Result) {
	if r.cfg.JSONPath {
		return r.queryJSONPath(doc, jsonPath, out)
	}

	if r.cfg.FirstOnly {
		value, err := path.FindFirst(doc)
		if errors.Is(err, dotpath.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, exit.Errorf("Error: %v\n", err)
		}
		return true, r.write(out, value)
	}

	found := false
	for value := range path.Matches(doc) {
		if errResult := r.write(out, value); errResult != nil {
			return found, errResult
		}
		found = true
	}
	return found, nil
}

func (r *Runner) queryJSONPath(doc any, jsonPath *extractor.Query, out *formatter.Formatter) (bool, *exit.Result) {
	plain := document.Plain(doc)

	if r.cfg.FirstOnly {
		value, err := jsonPath.First(plain)
		if errors.Is(err, extractor.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, exit.Errorf("Error: %v\n", err)
		}
		return true, r.write(out, value)
	}

	values := jsonPath.Select(plain)
	for _, value := range values {
		if errResult := r.write(out, value); errResult != nil {
			return len(values) > 0, errResult
		}
	}
	return len(values) > 0, nil
}

func (r *Runner) write(out *formatter.Formatter, value any) *exit.Result {
	if err := out.Write(value); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	return nil
}
