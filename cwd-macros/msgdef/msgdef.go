// Package msgdef reads message enum declarations, with the interfaces each
// enum asks for, from YAML or TOML files.
package msgdef

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
)

type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported declaration format")
	ErrInvalidDecl       = errors.New("invalid declaration")
)

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type File struct {
	Contract string     `yaml:"contract" toml:"contract"`
	Enums    []EnumDecl `yaml:"enums" toml:"enums"`
}

type EnumDecl struct {
	Name string `yaml:"name" toml:"name"`
	Doc  string `yaml:"doc,omitempty" toml:"doc"`
	// Interfaces are applied in the order they are listed.
	Interfaces []string      `yaml:"interfaces,omitempty" toml:"interfaces"`
	Limit      int           `yaml:"limit,omitempty" toml:"limit"`
	Variants   []VariantDecl `yaml:"variants,omitempty" toml:"variants"`
}

type VariantDecl struct {
	Name    string            `yaml:"name" toml:"name"`
	Doc     string            `yaml:"doc,omitempty" toml:"doc"`
	Kind    string            `yaml:"kind,omitempty" toml:"kind"`
	Returns string            `yaml:"returns,omitempty" toml:"returns"`
	Payload string            `yaml:"payload,omitempty" toml:"payload"`
	Fields  []cwdmacros.Field `yaml:"fields,omitempty" toml:"fields"`
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidDecl, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return &f, nil
}

// Definitions converts the declarations into engine input. Interface names
// are passed through as written; the engine rejects the unknown ones.
func (f *File) Definitions() ([]cwdmacros.EnumDefinition, error) {
	defs := make([]cwdmacros.EnumDefinition, 0, len(f.Enums))
	for _, e := range f.Enums {
		def, err := e.definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (e EnumDecl) definition() (cwdmacros.EnumDefinition, error) {
	if !identRegex.MatchString(e.Name) {
		return cwdmacros.EnumDefinition{}, fmt.Errorf("%w: enum name %q", ErrInvalidDecl, e.Name)
	}
	if e.Limit < 0 {
		return cwdmacros.EnumDefinition{}, fmt.Errorf("%w: enum %s: negative limit", ErrInvalidDecl, e.Name)
	}

	def := cwdmacros.EnumDefinition{
		Name:         e.Name,
		Doc:          e.Doc,
		VariantLimit: e.Limit,
		Variants:     make([]cwdmacros.VariantSpec, 0, len(e.Variants)),
		Interfaces:   make([]cwdmacros.InterfaceKey, 0, len(e.Interfaces)),
	}
	for _, v := range e.Variants {
		spec, err := v.spec()
		if err != nil {
			return cwdmacros.EnumDefinition{}, fmt.Errorf("enum %s: %w", e.Name, err)
		}
		def.Variants = append(def.Variants, spec)
	}
	for _, key := range e.Interfaces {
		def.Interfaces = append(def.Interfaces, cwdmacros.InterfaceKey(key))
	}
	return def, nil
}

func (v VariantDecl) spec() (cwdmacros.VariantSpec, error) {
	if !identRegex.MatchString(v.Name) {
		return cwdmacros.VariantSpec{}, fmt.Errorf("%w: variant name %q", ErrInvalidDecl, v.Name)
	}
	kind := v.Kind
	if kind == "" && v.Payload != "" {
		kind = cwdmacros.PayloadTuple.String()
	}
	k, err := cwdmacros.ParsePayloadKind(kind)
	if err != nil {
		return cwdmacros.VariantSpec{}, fmt.Errorf("%w: variant %s: %v", ErrInvalidDecl, v.Name, err)
	}

	spec := cwdmacros.VariantSpec{Name: v.Name, Doc: v.Doc, Kind: k, Returns: v.Returns}
	switch k {
	case cwdmacros.PayloadUnit:
		if len(v.Fields) > 0 || v.Payload != "" {
			return cwdmacros.VariantSpec{}, fmt.Errorf("%w: unit variant %s carries data", ErrInvalidDecl, v.Name)
		}
	case cwdmacros.PayloadTuple:
		if v.Payload == "" || len(v.Fields) > 0 {
			return cwdmacros.VariantSpec{}, fmt.Errorf("%w: tuple variant %s needs exactly one payload type", ErrInvalidDecl, v.Name)
		}
		spec.Fields = []cwdmacros.Field{{Type: v.Payload}}
	case cwdmacros.PayloadNamed:
		if v.Payload != "" {
			return cwdmacros.VariantSpec{}, fmt.Errorf("%w: named variant %s has a payload", ErrInvalidDecl, v.Name)
		}
		seen := make(map[string]bool, len(v.Fields))
		for _, fd := range v.Fields {
			if !identRegex.MatchString(fd.Name) || fd.Type == "" {
				return cwdmacros.VariantSpec{}, fmt.Errorf("%w: variant %s: field %q", ErrInvalidDecl, v.Name, fd.Name)
			}
			if seen[fd.Name] {
				return cwdmacros.VariantSpec{}, fmt.Errorf("%w: variant %s: duplicate field %s", ErrInvalidDecl, v.Name, fd.Name)
			}
			seen[fd.Name] = true
		}
		spec.Fields = append([]cwdmacros.Field(nil), v.Fields...)
	}
	return spec, nil
}
