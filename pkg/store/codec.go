package store

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/rules"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a rule file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type codec interface {
	encode(rs []rules.Rule) ([]byte, error)
	decode(data []byte) ([]rules.Rule, error)
}

// FormatFor picks the format from the path's extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func codecFor(f Format) codec {
	switch f {
	case FormatTOML:
		return tomlCodec{}
	case FormatYAML:
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) encode(rs []rules.Rule) ([]byte, error) {
	if rs == nil {
		rs = []rules.Rule{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (jsonCodec) decode(data []byte) ([]rules.Rule, error) {
	var rs []rules.Rule
	err := json.Unmarshal(data, &rs)
	return rs, err
}

// tomlFile wraps the list since TOML documents are tables
type tomlFile struct {
	Rules []rules.Rule `toml:"rules"`
}

type tomlCodec struct{}

func (tomlCodec) encode(rs []rules.Rule) ([]byte, error) {
	return toml.Marshal(tomlFile{Rules: rs})
}

func (tomlCodec) decode(data []byte) ([]rules.Rule, error) {
	var doc tomlFile
	err := toml.Unmarshal(data, &doc)
	return doc.Rules, err
}

type yamlCodec struct{}

func (yamlCodec) encode(rs []rules.Rule) ([]byte, error) {
	if rs == nil {
		rs = []rules.Rule{}
	}
	return yaml.Marshal(rs)
}

func (yamlCodec) decode(data []byte) ([]rules.Rule, error) {
	var rs []rules.Rule
	err := yaml.Unmarshal(data, &rs)
	return rs, err
}
