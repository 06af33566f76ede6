// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemafile loads an easyargs schema from a TOML or YAML document.
//
// It loads schema definitions only; it never reads argument values from a
// file. A document declares required positional arguments in order and
// flagged options, with defaults written as strings and validated through
// the same parsers that handle command-line values:
//
//	[[required]]
//	name = "count"
//	type = "int"
//	help = "Number of items"
//
//	[[options]]
//	name = "rate"
//	type = "float"
//	flag = "--rate"
//	default = "1.0"
//	help = "Sampling rate"
//
//	[[options]]
//	name = "verbose"
//	type = "bool"
//	flag = "--verbose"
//	help = "Verbose output"
package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/easyargs/easyargs/pkg/easyargs"
)

type document struct {
	Required []requiredEntry `toml:"required" yaml:"required"`
	Options  []optionEntry   `toml:"options" yaml:"options"`
}

type requiredEntry struct {
	Name  string `toml:"name" yaml:"name"`
	Type  string `toml:"type" yaml:"type"`
	Label string `toml:"label" yaml:"label"`
	Help  string `toml:"help" yaml:"help"`
}

type optionEntry struct {
	Name    string `toml:"name" yaml:"name"`
	Type    string `toml:"type" yaml:"type"`
	Flag    string `toml:"flag" yaml:"flag"`
	Label   string `toml:"label" yaml:"label"`
	Help    string `toml:"help" yaml:"help"`
	Default string `toml:"default" yaml:"default"`
	Format  string `toml:"format" yaml:"format"`
}

// Load reads the schema document at path. The extension selects the decoder:
// .toml, or .yaml/.yml.
func Load(path string) (*easyargs.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".toml":
		return LoadTOML(data)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return nil, fmt.Errorf("schemafile: unsupported extension %q", ext)
	}
}

// LoadTOML builds a schema from a TOML document.
func LoadTOML(data []byte) (*easyargs.Schema, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return build(doc)
}

// LoadYAML builds a schema from a YAML document.
func LoadYAML(data []byte) (*easyargs.Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return build(doc)
}

func build(doc document) (*easyargs.Schema, error) {
	descs := make([]easyargs.Descriptor, 0, len(doc.Required)+len(doc.Options))

	for _, e := range doc.Required {
		vt, ok := easyargs.TypeByName(e.Type)
		if !ok {
			return nil, fmt.Errorf("schemafile: argument %q: unknown type %q", e.Name, e.Type)
		}
		descs = append(descs, easyargs.Descriptor{
			Kind:  easyargs.Required,
			Name:  e.Name,
			Type:  vt,
			Label: e.Label,
			Help:  e.Help,
		})
	}

	for _, e := range doc.Options {
		d := easyargs.Descriptor{
			Name:   e.Name,
			Label:  e.Label,
			Help:   e.Help,
			Flag:   e.Flag,
			Format: e.Format,
		}
		if e.Type == "bool" {
			if e.Default != "" {
				return nil, fmt.Errorf("schemafile: argument %q: bool options cannot take a default", e.Name)
			}
			d.Kind = easyargs.Boolean
			descs = append(descs, d)
			continue
		}
		vt, ok := easyargs.TypeByName(e.Type)
		if !ok {
			return nil, fmt.Errorf("schemafile: argument %q: unknown type %q", e.Name, e.Type)
		}
		d.Kind = easyargs.Optional
		d.Type = vt
		if e.Default != "" {
			def, err := easyargs.ParseValue(vt, e.Default)
			if err != nil {
				return nil, fmt.Errorf("schemafile: argument %q: bad default: %w", e.Name, err)
			}
			d.Default = def
		}
		descs = append(descs, d)
	}

	return easyargs.New(descs...)
}
