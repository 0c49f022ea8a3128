// Package cwdschema exports augmented message enums as the JSON Schema files
// CosmWasm contracts publish under their schema/ directory.
package cwdschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// Document is a JSON Schema document as plain JSON values.
type Document map[string]any

// Build renders def as a draft-07 schema: one externally tagged oneOf entry
// per variant, in variant order.
func Build(def cwdmacros.AugmentedEnumDefinition) Document {
	definitions := map[string]any{}
	oneOf := make([]any, 0, len(def.Variants))
	for _, v := range def.Variants {
		oneOf = append(oneOf, variantSchema(v, definitions))
	}

	doc := Document{
		"$schema": draft07,
		"title":   def.Name,
		"oneOf":   oneOf,
	}
	if def.Doc != "" {
		doc["description"] = def.Doc
	}
	if len(definitions) > 0 {
		doc["definitions"] = definitions
	}
	return doc
}

func variantSchema(v cwdmacros.VariantSpec, definitions map[string]any) map[string]any {
	tag := v.TagName()
	var s map[string]any
	switch v.Kind {
	case cwdmacros.PayloadUnit:
		s = map[string]any{
			"type": "string",
			"enum": []any{tag},
		}
	case cwdmacros.PayloadTuple:
		var payload map[string]any
		if len(v.Fields) > 0 {
			payload = typeSchema(v.Fields[0].Type, definitions)
		} else {
			payload = map[string]any{}
		}
		s = taggedObject(tag, payload)
	default:
		required := []any{}
		properties := map[string]any{}
		for _, f := range v.Fields {
			properties[f.Name] = typeSchema(f.Type, definitions)
			if !f.Optional() {
				required = append(required, f.Name)
			}
		}
		body := map[string]any{
			"type":                 "object",
			"additionalProperties": false,
		}
		if len(properties) > 0 {
			body["properties"] = properties
		}
		if len(required) > 0 {
			body["required"] = required
		}
		s = taggedObject(tag, body)
	}
	if v.Doc != "" {
		s["description"] = v.Doc
	}
	return s
}

func taggedObject(tag string, payload map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"required":             []any{tag},
		"properties":           map[string]any{tag: payload},
		"additionalProperties": false,
	}
}

// typeSchema maps a type reference onto the JSON shape CosmWasm serializes
// it to. Types it does not know become open definitions.
func typeSchema(ref string, definitions map[string]any) map[string]any {
	ref = strings.TrimSpace(ref)
	if inner, ok := generic(ref, "Option"); ok {
		s := typeSchema(inner, definitions)
		if t, ok := s["type"].(string); ok {
			s["type"] = []any{t, "null"}
			return s
		}
		return map[string]any{"anyOf": []any{s, map[string]any{"type": "null"}}}
	}
	if inner, ok := generic(ref, "Vec"); ok {
		return map[string]any{"type": "array", "items": typeSchema(inner, definitions)}
	}

	switch ref {
	case "bool":
		return map[string]any{"type": "boolean"}
	case "u8", "u16", "u32", "u64":
		return map[string]any{"type": "integer", "format": "uint" + ref[1:], "minimum": 0}
	case "i8", "i16", "i32", "i64":
		return map[string]any{"type": "integer", "format": "int" + ref[1:]}
	case "String", "str", "&str":
		return map[string]any{"type": "string"}
	}

	name := definitionName(ref)
	switch name {
	case "Addr", "Uint64", "Uint128", "Uint256", "Decimal", "Decimal256", "Binary", "Timestamp":
		if _, ok := definitions[name]; !ok {
			definitions[name] = map[string]any{"type": "string"}
		}
	default:
		// The short name belongs to the first path that claims it, any other
		// path with the same short name is keyed by its full path.
		if existing, ok := definitions[name].(map[string]any); ok && existing["description"] != ref {
			name = qualifiedName(ref)
		}
		if _, ok := definitions[name]; !ok {
			definitions[name] = map[string]any{"description": ref}
		}
	}
	return map[string]any{"$ref": "#/definitions/" + name}
}

// qualifiedName keys a definition by its whole type path:
// cwd_voting::status::Status is cwd_voting.status.Status.
func qualifiedName(ref string) string {
	ref = strings.ReplaceAll(ref, "::", ".")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '.' || r == '_',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return -1
		default:
			return '_'
		}
	}, ref)
}

func generic(ref, outer string) (string, bool) {
	prefix := outer + "<"
	if !strings.HasPrefix(ref, prefix) || !strings.HasSuffix(ref, ">") {
		return "", false
	}
	return ref[len(prefix) : len(ref)-1], true
}

// definitionName strips the module path and generics: cw20::TokenInfoResponse
// is TokenInfoResponse.
func definitionName(ref string) string {
	if i := strings.Index(ref, "<"); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.LastIndex(ref, "::"); i >= 0 {
		ref = ref[i+2:]
	}
	return ref
}

// FileName is the schema file an enum is exported to, e.g. query_msg.json.
func FileName(enum string) string {
	return cwdmacros.SnakeCase(enum) + ".json"
}

func (d Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Compile checks the document is a valid draft-07 schema.
func (d Document) Compile() (*jsonschema.Schema, error) {
	raw, err := d.JSON()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	title, _ := d["title"].(string)
	url := "http://cwd.local/schema/" + FileName(title)

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}

// Validate checks a JSON message against the document.
func (d Document) Validate(instance []byte) error {
	sch, err := d.Compile()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(instance))
	if err != nil {
		return err
	}
	return sch.Validate(v)
}

// Export writes the schema of def into dir and returns the file path. The
// document is compiled first so an invalid schema is never written.
func Export(dir string, def cwdmacros.AugmentedEnumDefinition) (string, error) {
	doc := Build(def)
	if _, err := doc.Compile(); err != nil {
		return "", fmt.Errorf("schema for %s: %w", def.Name, err)
	}
	raw, err := doc.JSON()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(def.Name))
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
