package content

import (
	"reflect"
	"strconv"
	"strings"
)

// FieldSchema describes the constraints on one field of a section, as
// enforced by Validate.
type FieldSchema struct {
	Field     string   `json:"field"`
	Type      string   `json:"type"`
	Required  bool     `json:"required"`
	MaxLength int      `json:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Format    string   `json:"format,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// SectionSchema describes one section. Unique names a field that must not
// repeat across the items of a list section.
type SectionSchema struct {
	Section string        `json:"section"`
	Kind    string        `json:"kind"`
	Unique  string        `json:"unique,omitempty"`
	Fields  []FieldSchema `json:"fields"`
}

// documentFields indexes the Document struct fields by JSON name.
var documentFields = func() map[string]reflect.StructField {
	t := reflect.TypeOf(Document{})
	m := make(map[string]reflect.StructField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		m[jsonName(t.Field(i))] = t.Field(i)
	}
	return m
}()

// Schema returns the schema of s derived from the validation tags.
func (s Section) Schema() SectionSchema {
	out := SectionSchema{Section: s.Name, Kind: "object"}
	t := s.typ
	if s.List {
		out.Kind = "list"
		t = t.Elem()
		if f, ok := documentFields[s.Name]; ok {
			for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
				if p, ok := strings.CutPrefix(rule, "unique="); ok {
					if uf, ok := t.FieldByName(p); ok {
						out.Unique = jsonName(uf)
					}
				}
			}
		}
	}
	for i := 0; i < t.NumField(); i++ {
		out.Fields = append(out.Fields, fieldSchema(t.Field(i)))
	}
	return out
}

// Schema returns every section's schema in document order.
func Schema() []SectionSchema {
	out := make([]SectionSchema, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Schema())
	}
	return out
}

func fieldSchema(f reflect.StructField) FieldSchema {
	fs := FieldSchema{Field: jsonName(f), Type: "string", Format: f.Tag.Get("format")}
	if f.Type.Kind() == reflect.Slice {
		fs.Type = "array"
	}
	for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
		name, param, _ := strings.Cut(rule, "=")
		switch name {
		case "required":
			if fs.Type != "array" {
				fs.Required = true
			}
		case "max":
			fs.MaxLength, _ = strconv.Atoi(param)
		case "email", "url":
			fs.Format = name
		case "cnpj":
			fs.Pattern = CNPJPattern
		case "oneof":
			fs.Options = strings.Fields(param)
		}
	}
	return fs
}
