package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Name is the key the field is stored under.
	Name string

	// Index is the field index path for reflect.Value.FieldByIndex.
	Index []int

	// OmitEmpty leaves zero values out when marshaling.
	OmitEmpty bool
}

// ParseStructTag parses a struct tag string and returns a map of key-value pairs.
// Handles comma-separated values: `grfon:"key1=value1,key2=value2,flag"`
// Supports quoted values with spaces: `grfon:"field='value with spaces'"`
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}
	var parts []string
	var current strings.Builder
	inSingleQuote := false
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c == '\'':
			inSingleQuote = !inSingleQuote
			current.WriteByte(c)
		case c == ',' && !inSingleQuote:
			if part := strings.TrimSpace(current.String()); part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if inSingleQuote {
		return nil, fmt.Errorf("invalid tag %q: unterminated quote", tag)
	}
	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}
	for _, part := range parts {
		idx := strings.Index(part, "=")
		if idx < 0 {
			result[part] = ""
			continue
		}
		key := strings.TrimSpace(part[:idx])
		if key == "" {
			return nil, fmt.Errorf("invalid tag: empty key in %q", part)
		}
		value := strings.TrimSpace(part[idx+1:])
		if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
			value = value[1 : len(value)-1]
		}
		result[key] = value
	}
	return result, nil
}

// structFields lists the mapped fields of struct type t, with the fields
// of embedded structs promoted.  Outer fields shadow embedded ones.
func structFields(t reflect.Type) ([]FieldInfo, error) {
	var res []FieldInfo
	seen := map[string]bool{}
	var promoted []FieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		parsed, err := ParseStructTag(f.Tag.Get("grfon"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrMapping, t, f.Name, err)
		}
		if _, omit := parsed["omit"]; omit {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if _, named := parsed["field"]; !named {
				sub, err := structFields(f.Type)
				if err != nil {
					return nil, err
				}
				for _, sf := range sub {
					sf.Index = append([]int{i}, sf.Index...)
					promoted = append(promoted, sf)
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		info := FieldInfo{Name: f.Name, Index: []int{i}}
		if name := parsed["field"]; name != "" {
			info.Name = name
		}
		_, info.OmitEmpty = parsed["omitempty"]
		if seen[info.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate field %q", ErrMapping, t, info.Name)
		}
		seen[info.Name] = true
		res = append(res, info)
	}
	for _, pf := range promoted {
		if seen[pf.Name] {
			continue
		}
		seen[pf.Name] = true
		res = append(res, pf)
	}
	return res, nil
}
