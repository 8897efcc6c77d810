package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a booksync config file. The extension picks the format
// (.json, .yaml/.yml or .hcl); a bare ".booksync" dotfile may be written
// in either YAML or HCL, whichever parses.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := parse(data, path)
	if err != nil {
		return nil, err
	}
	cfg.location = path
	return cfg, nil
}

func parse(data []byte, path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".booksync" || filepath.Base(path) == ".booksync" {
		if cfg, err := parseYAML(data); err == nil {
			return cfg, nil
		}
		cfg, err := parseHCL(data, path)
		if err != nil {
			return nil, errors.Errorf("failed to parse .booksync as YAML or HCL: %w", err)
		}
		return cfg, nil
	}

	switch ext {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".hcl":
		return parseHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
}

// Unknown keys are rejected in every format; a typo in a config file
// should fail loudly rather than silently sync the wrong directories.

func parseJSON(data []byte) (*Config, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

func parseHCL(data []byte, filename string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, &hcl.EvalContext{Variables: map[string]cty.Value{}}, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &cfg, nil
}
