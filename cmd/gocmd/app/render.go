package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/gocmd/errors"
	"github.com/kbukum/gocmd/process"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var formats = []string{FormatText, FormatJSON, FormatYAML, FormatTOML}

// report is the structured form of one execution.
type report struct {
	Command string          `json:"command" yaml:"command" toml:"command"`
	Args    []string        `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Mode    process.Mode    `json:"mode" yaml:"mode" toml:"mode"`
	Result  *process.Result `json:"result" yaml:"result" toml:"result"`
}

type renderer struct {
	format string
	out    io.Writer
	errOut io.Writer
}

func newRenderer(format string, out, errOut io.Writer) (*renderer, error) {
	if !slices.Contains(formats, format) {
		return nil, errors.InvalidInput("format", fmt.Sprintf("must be one of %v", formats))
	}
	return &renderer{format: format, out: out, errOut: errOut}, nil
}

// result writes output lines to out and error lines to errOut in text
// format, or the whole report to out otherwise.
func (r *renderer) result(rep report) error {
	if r.format != FormatText {
		return r.encode(rep)
	}
	for _, line := range rep.Result.Output {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	for _, line := range rep.Result.Error {
		if _, err := fmt.Fprintln(r.errOut, line); err != nil {
			return err
		}
	}
	return nil
}

// value writes v in the structured formats and text in text format.
func (r *renderer) value(v any, text string) error {
	if r.format == FormatText {
		_, err := fmt.Fprintln(r.out, text)
		return err
	}
	return r.encode(v)
}

// failure reports err. Structured formats get an error envelope on out.
func (r *renderer) failure(err error) {
	if r.format == FormatText {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return
	}
	if encErr := r.encode(errors.Wrap(err).ToResponse()); encErr != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
	}
}

func (r *renderer) encode(v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(r.out).Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", r.format)
	}
}
