package msgdef

import (
	"bytes"

	"gopkg.in/yaml.v3"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
)

type renderedFile struct {
	Contract string         `yaml:"contract,omitempty"`
	Enums    []renderedEnum `yaml:"enums"`
}

type renderedEnum struct {
	Name       string            `yaml:"name"`
	Doc        string            `yaml:"doc,omitempty"`
	Interfaces []string          `yaml:"interfaces,omitempty"`
	Variants   []renderedVariant `yaml:"variants"`
}

type renderedVariant struct {
	Name    string            `yaml:"name"`
	Tag     string            `yaml:"tag"`
	Doc     string            `yaml:"doc,omitempty"`
	Kind    string            `yaml:"kind"`
	Returns string            `yaml:"returns,omitempty"`
	Payload string            `yaml:"payload,omitempty"`
	Fields  []cwdmacros.Field `yaml:"fields,omitempty"`
}

// Render writes augmented enums as YAML, in variant order, each variant
// carrying its wire tag.
func Render(contract string, defs []cwdmacros.AugmentedEnumDefinition) ([]byte, error) {
	out := renderedFile{Contract: contract, Enums: make([]renderedEnum, 0, len(defs))}
	for _, d := range defs {
		e := renderedEnum{Name: d.Name, Doc: d.Doc}
		for _, k := range d.Interfaces {
			e.Interfaces = append(e.Interfaces, string(k))
		}
		for _, v := range d.Variants {
			rv := renderedVariant{
				Name:    v.Name,
				Tag:     v.TagName(),
				Doc:     v.Doc,
				Kind:    v.Kind.String(),
				Returns: v.Returns,
			}
			if v.Kind == cwdmacros.PayloadTuple && len(v.Fields) == 1 {
				rv.Payload = v.Fields[0].Type
			} else {
				rv.Fields = v.Fields
			}
			e.Variants = append(e.Variants, rv)
		}
		out.Enums = append(out.Enums, e)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
