package spec

import (
	"fmt"
	"strings"

	"github.com/forgekit/forge/internal/catalog"
	"github.com/forgekit/forge/internal/ident"
)

// Field is one validated field of a domain spec.
type Field struct {
	Name     string // canonical snake_case name
	Type     catalog.FieldType
	Required bool
	Mapping  catalog.TypeMapping
}

// GoName returns the exported struct-field name.
func (f Field) GoName() string {
	return ident.ToPascal(f.Name)
}

// JSONTag returns the json tag value (snake_case).
func (f Field) JSONTag() string {
	return f.Name
}

// DomainSpec is the immutable intermediate representation of one parsed
// domain. It is constructed once per invocation and never mutated.
type DomainSpec struct {
	Name   string // canonical lowercase singular
	Forms  ident.Forms
	Fields []Field
}

// goKeywords are rejected as domain or field names; they collide with
// identifiers in the generated Go layers.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// Parse validates a raw domain name and field-list string and builds the
// DomainSpec. The field grammar is "name:type,name:type,..."; a "!" suffix
// on the type marks the field required ("email:string!"). An empty field
// list is valid and yields a bare-identity domain. Any invalid entry
// aborts the whole parse.
func Parse(nameRaw, fieldsRaw string) (*DomainSpec, error) {
	name, err := normalizeName(nameRaw)
	if err != nil {
		return nil, err
	}

	fields, err := parseFields(fieldsRaw)
	if err != nil {
		return nil, err
	}

	return &DomainSpec{
		Name:   name,
		Forms:  ident.Derive(name),
		Fields: fields,
	}, nil
}

// normalizeName lowercases the raw name (via snake_case conversion) and
// validates the character set.
func normalizeName(raw string) (string, error) {
	name := ident.ToSnake(strings.TrimSpace(raw))
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDomainName)
	}
	if !isLetter(name[0]) {
		return "", fmt.Errorf("%w: %q must start with a letter", ErrInvalidDomainName, raw)
	}
	for i := 0; i < len(name); i++ {
		if !isWordChar(name[i]) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidDomainName, raw, name[i])
		}
	}
	if goKeywords[name] {
		return "", fmt.Errorf("%w: %q", ErrReservedWord, name)
	}
	return name, nil
}

func parseFields(fieldsRaw string) ([]Field, error) {
	fieldsRaw = strings.TrimSpace(fieldsRaw)
	if fieldsRaw == "" {
		return nil, nil
	}

	entries := strings.Split(fieldsRaw, ",")
	fields := make([]Field, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Count(entry, ":") != 1 {
			return nil, fmt.Errorf("%w: %q (want name:type)", ErrMalformedField, entry)
		}

		namePart, typePart, _ := strings.Cut(entry, ":")
		fieldName := ident.ToSnake(strings.TrimSpace(namePart))
		typeName := strings.TrimSpace(typePart)

		required := strings.HasSuffix(typeName, "!")
		if required {
			typeName = strings.TrimSuffix(typeName, "!")
		}

		if err := validateFieldName(fieldName); err != nil {
			return nil, err
		}
		if seen[fieldName] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, fieldName)
		}
		seen[fieldName] = true

		ft, err := catalog.Resolve(typeName)
		if err != nil {
			return nil, &FieldError{Field: fieldName, Type: typeName, Err: err}
		}

		fields = append(fields, Field{
			Name:     fieldName,
			Type:     ft,
			Required: required,
			Mapping:  catalog.Lookup(ft),
		})
	}

	return fields, nil
}

func validateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty field name", ErrMalformedField)
	}
	if !isLetter(name[0]) && name[0] != '_' {
		return fmt.Errorf("%w: field %q must start with a letter", ErrMalformedField, name)
	}
	for i := 0; i < len(name); i++ {
		if !isWordChar(name[i]) {
			return fmt.Errorf("%w: field %q contains %q", ErrMalformedField, name, name[i])
		}
	}
	if goKeywords[name] {
		return fmt.Errorf("%w: field %q", ErrReservedWord, name)
	}
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
