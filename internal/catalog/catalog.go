// Package catalog maps the closed set of logical field types to their
// per-layer lexical representations: the Go declaration, the gorm column
// tag, the validation tag, the zero value, and any import the declaration
// needs. The catalog is immutable and exhaustive; adding a type means
// extending the enum and the table together.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownFieldType indicates a type string outside the closed enum.
var ErrUnknownFieldType = errors.New("catalog: unknown field type")

// FieldType is the closed enum of logical field types.
type FieldType int

const (
	String FieldType = iota
	Int
	Int64
	Float64
	Bool
	Time
	UUID
)

// String returns the field-syntax name of the type ("string", "time", ...).
func (t FieldType) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
	return typeNames[t]
}

var typeNames = []string{"string", "int", "int64", "float64", "bool", "time", "uuid"}

// TypeMapping is the per-layer representation of one logical type.
// All fields are populated for every catalog entry.
type TypeMapping struct {
	GoType      string // entity declaration, e.g. "time.Time"
	ColumnTag   string // gorm column hint, e.g. "type:timestamp"
	ValidateTag string // type-level validator keyword, may be empty
	ZeroValue   string // literal zero value for the declaration
	Import      string // import path required by GoType, "" if none
}

var mappings = map[FieldType]TypeMapping{
	String:  {GoType: "string", ColumnTag: "type:varchar(255)", ValidateTag: "", ZeroValue: `""`},
	Int:     {GoType: "int", ColumnTag: "type:bigint", ValidateTag: "numeric", ZeroValue: "0"},
	Int64:   {GoType: "int64", ColumnTag: "type:bigint", ValidateTag: "numeric", ZeroValue: "0"},
	Float64: {GoType: "float64", ColumnTag: "type:decimal(10,2)", ValidateTag: "numeric", ZeroValue: "0"},
	Bool:    {GoType: "bool", ColumnTag: "type:boolean;default:false", ValidateTag: "", ZeroValue: "false"},
	Time:    {GoType: "time.Time", ColumnTag: "type:timestamp", ValidateTag: "", ZeroValue: "time.Time{}", Import: "time"},
	UUID:    {GoType: "uuid.UUID", ColumnTag: "type:uuid", ValidateTag: "uuid", ZeroValue: "uuid.Nil", Import: "github.com/google/uuid"},
}

var byName = map[string]FieldType{
	"string":  String,
	"int":     Int,
	"int64":   Int64,
	"float64": Float64,
	"bool":    Bool,
	"time":    Time,
	"uuid":    UUID,
}

// Resolve maps a raw type string to its FieldType. Unknown strings fail
// with ErrUnknownFieldType.
func Resolve(raw string) (FieldType, error) {
	t, ok := byName[raw]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFieldType, raw)
	}
	return t, nil
}

// Lookup returns the TypeMapping for a FieldType. The enum is closed, so
// every valid FieldType has an entry.
func Lookup(t FieldType) TypeMapping {
	return mappings[t]
}

// All returns every FieldType in the catalog, in declaration order.
func All() []FieldType {
	return []FieldType{String, Int, Int64, Float64, Bool, Time, UUID}
}
