// Package ident derives every identifier form the generator needs from a
// single canonical domain name: PascalCase, camelCase, snake_case, and
// kebab-case, in singular and plural. All functions are pure; the same
// input always yields the same output.
package ident

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser title-cases a single lowercase word ("item" -> "Item").
var titleCaser = cases.Title(language.English)

// Forms holds every derived identifier form for one domain name.
// Derive computes the full set once; templates read from it.
type Forms struct {
	Singular string // canonical lowercase singular, e.g. "order_item"
	Plural   string // lowercase plural, e.g. "order_items"

	PascalSingular string // OrderItem
	PascalPlural   string // OrderItems
	CamelSingular  string // orderItem
	CamelPlural    string // orderItems
	SnakeSingular  string // order_item
	SnakePlural    string // order_items
	KebabPlural    string // order-items, used for route segments
}

// Derive computes all identifier forms for a canonical singular name.
// The input is expected to be a lowercase snake_case identifier; mixed-case
// input is normalized first.
func Derive(name string) Forms {
	snake := ToSnake(name)
	plural, _ := Pluralize(snake)

	return Forms{
		Singular:       snake,
		Plural:         plural,
		PascalSingular: ToPascal(snake),
		PascalPlural:   ToPascal(plural),
		CamelSingular:  ToCamel(snake),
		CamelPlural:    ToCamel(plural),
		SnakeSingular:  snake,
		SnakePlural:    plural,
		KebabPlural:    strings.ReplaceAll(plural, "_", "-"),
	}
}

// ToSnake converts camelCase or PascalCase to snake_case. Existing
// underscores are preserved.
func ToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToPascal converts snake_case to PascalCase.
func ToPascal(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(titleCaser.String(p))
	}
	return b.String()
}

// ToCamel converts snake_case to camelCase.
func ToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(p))
			continue
		}
		b.WriteString(titleCaser.String(p))
	}
	return b.String()
}

// ToKebab converts snake_case to kebab-case.
func ToKebab(s string) string {
	return strings.ReplaceAll(ToSnake(s), "_", "-")
}
