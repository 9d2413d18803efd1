package feedback

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a feedback model file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown model format %q (want json or yaml)", s)
	}
}

// ErrInvalidModel indicates a model document that fails to parse or does
// not conform to the model schema.
type ErrInvalidModel struct {
	Err error
}

func (e *ErrInvalidModel) Error() string {
	return fmt.Sprintf("invalid feedback model: %v", e.Err)
}

func (e *ErrInvalidModel) Unwrap() error { return e.Err }

// Load reads a model in the given format, validates it against the model
// schema, and decodes it.
func Load(r io.Reader, format Format) (Model, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Model{}, fmt.Errorf("read model: %w", err)
	}

	if format == FormatYAML {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return Model{}, &ErrInvalidModel{Err: err}
		}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Model{}, &ErrInvalidModel{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema()
	if err != nil {
		return Model{}, fmt.Errorf("compile model schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return Model{}, &ErrInvalidModel{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var m Model
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&m); err != nil {
		return Model{}, &ErrInvalidModel{Err: err}
	}
	return m, nil
}

// Encode writes m in the given format.
func Encode(w io.Writer, m Model, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML to JSON: %w", err)
	}
	return out, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain JSON values.
		defBytes, err := json.Marshal(modelSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://feedback-model.json"
		if err := c.AddResource(url, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
	})
	return schemaCompiled, schemaErr
}
