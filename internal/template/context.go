package template

import (
	"strings"

	"github.com/forgekit/forge/internal/catalog"
	"github.com/forgekit/forge/internal/ident"
	"github.com/forgekit/forge/internal/spec"
)

// FieldData is one entity field, pre-rendered for template consumption.
type FieldData struct {
	GoName      string // exported struct field name
	GoType      string // declaration type
	JSONTag     string // snake_case json name
	ColumnTag   string // gorm column hint, includes "not null" when required
	ValidateTag string // combined validator tag, "" when none
	ZeroValue   string // literal zero value
}

// Context provides data for template rendering. All fields are exported
// for use with text/template; unset fields render empty, which the
// registry's path patterns and bodies rely on.
type Context struct {
	// Project
	Module string

	// Domain identifier forms
	Entity       string // PascalCase singular, e.g. "Product"
	EntityPlural string // PascalCase plural
	VarName      string // camelCase singular, used for locals
	VarPlural    string // camelCase plural
	Snake        string // snake_case singular, used in file names
	SnakePlural  string // snake_case plural, table name
	KebabPlural  string // kebab-case plural, route segment

	// Fields
	Fields    []FieldData
	NeedsUUID bool // any field declares uuid.UUID; the entity always imports time

	// Variant selectors for non-domain kinds
	Subtype  string // middleware / infrastructure / ui subtype
	Provider string // infrastructure provider

	// UI artifact names
	Component string // PascalCase component or page name
	Kebab     string // kebab-case artifact name, route/api segment
	Hook      string // camelCase hook name with "use" prefix

	// Auth provider switches
	WithPassword bool // local credentials (local or both)
	WithGoogle   bool // google oauth (google or both)
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// NewContext creates a Context and applies the provided options.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithModule sets the target project's Go module path.
func WithModule(module string) ContextOption {
	return func(c *Context) {
		c.Module = module
	}
}

// WithDomain fills every domain-derived field from a parsed spec.
func WithDomain(d *spec.DomainSpec) ContextOption {
	return func(c *Context) {
		c.Entity = d.Forms.PascalSingular
		c.EntityPlural = d.Forms.PascalPlural
		c.VarName = d.Forms.CamelSingular
		c.VarPlural = d.Forms.CamelPlural
		c.Snake = d.Forms.SnakeSingular
		c.SnakePlural = d.Forms.SnakePlural
		c.KebabPlural = d.Forms.KebabPlural

		c.Fields = make([]FieldData, 0, len(d.Fields))
		for _, f := range d.Fields {
			c.Fields = append(c.Fields, newFieldData(f))
			if f.Type == catalog.UUID {
				c.NeedsUUID = true
			}
		}
	}
}

// WithSubtype sets the middleware/infrastructure/ui subtype.
func WithSubtype(subtype string) ContextOption {
	return func(c *Context) {
		c.Subtype = subtype
	}
}

// WithProvider sets the infrastructure provider.
func WithProvider(provider string) ContextOption {
	return func(c *Context) {
		c.Provider = provider
	}
}

// WithComponent sets the UI component (or page) name forms. UI names may
// arrive in kebab-case ("product-list"), camelCase or PascalCase.
func WithComponent(name string) ContextOption {
	return func(c *Context) {
		snake := uiSnake(name)
		c.Component = ident.ToPascal(snake)
		c.Kebab = ident.ToKebab(snake)
	}
}

// WithHook sets the hook name, prefixing "use" when absent.
func WithHook(name string) ContextOption {
	return func(c *Context) {
		snake := uiSnake(name)
		camel := ident.ToCamel(snake)
		if !strings.HasPrefix(camel, "use") {
			camel = "use" + ident.ToPascal(snake)
		}
		c.Hook = camel
		c.Component = ident.ToPascal(ident.ToSnake(camel)) // options/result type prefix
	}
}

// uiSnake normalizes a UI artifact name (kebab, camel or Pascal) to
// snake_case before the usual derivations.
func uiSnake(name string) string {
	return ident.ToSnake(strings.ReplaceAll(name, "-", "_"))
}

// WithAuthProvider sets the credential switches for "local", "google" or
// "both".
func WithAuthProvider(provider string) ContextOption {
	return func(c *Context) {
		c.WithPassword = provider == "local" || provider == "both"
		c.WithGoogle = provider == "google" || provider == "both"
	}
}

func newFieldData(f spec.Field) FieldData {
	column := f.Mapping.ColumnTag
	if f.Required {
		column += ";not null"
	}

	var validators []string
	if f.Required {
		validators = append(validators, "required")
	}
	if f.Mapping.ValidateTag != "" {
		validators = append(validators, f.Mapping.ValidateTag)
	}

	return FieldData{
		GoName:      f.GoName(),
		GoType:      f.Mapping.GoType,
		JSONTag:     f.JSONTag(),
		ColumnTag:   column,
		ValidateTag: strings.Join(validators, ","),
		ZeroValue:   f.Mapping.ZeroValue,
	}
}
