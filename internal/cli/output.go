package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON, formatYAML, "yml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected json or yaml)", format)
	}
}

// render writes v to w in the requested format.
func render(w io.Writer, format string, v any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// readPayload decodes a JSON or YAML file into v. "-" reads from in.
// Files ending in .json are decoded as JSON, anything else as YAML.
func readPayload(path string, in io.Reader, v any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("--file is required")
	}

	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode json payload: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode yaml payload: %w", err)
	}
	return nil
}
