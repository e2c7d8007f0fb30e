// Package plan turns a generation request into an ordered list of
// artifacts to render. The mapping from request kind to template IDs is
// a fixed table; the planner only validates the request and resolves
// output paths, it never touches the filesystem.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forgekit/forge/internal/template"
)

var (
	ErrUnknownKind   = errors.New("plan: unknown generation kind")
	ErrUnknownPreset = errors.New("plan: unknown component preset")
)

// Kind identifies what family of artifacts a request produces.
type Kind int

const (
	KindDomainCRUD Kind = iota
	KindAuthLocal
	KindAuthGoogle
	KindAuthBoth
	KindMiddleware
	KindInfrastructure
	KindUIComponent
	KindUIHook
	KindUIPage
)

var kindNames = map[Kind]string{
	KindDomainCRUD:     "domain",
	KindAuthLocal:      "auth-local",
	KindAuthGoogle:     "auth-google",
	KindAuthBoth:       "auth-both",
	KindMiddleware:     "middleware",
	KindInfrastructure: "infrastructure",
	KindUIComponent:    "ui-component",
	KindUIHook:         "ui-hook",
	KindUIPage:         "ui-page",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Request describes one generation invocation.
type Request struct {
	Kind     Kind
	Subtype  string // middleware type, infra type, or UI variant
	Provider string // infra provider (local, s3, gcs, redis, memory)
}

// Step is one artifact to render: which template, and where the output
// lands relative to the project root.
type Step struct {
	TemplateID string
	Path       string
}

// Plan is the ordered set of steps for one request. Order matters:
// entity before the layers that import it.
type Plan struct {
	Kind  Kind
	Steps []Step
}

// Fixed per-kind template tables. DomainCRUD is ordered entity first so
// a partially completed batch still leaves a compilable core.
var domainTemplates = []string{
	"domain_entity",
	"domain_repository",
	"domain_repository_impl",
	"domain_usecase",
	"domain_handler",
	"domain_routes",
}

var authTemplates = []string{
	"auth_entity",
	"auth_dto",
	"auth_repository",
	"auth_repository_impl",
	"auth_service",
	"auth_service_impl",
	"auth_handler",
	"auth_jwt",
	"auth_middleware",
	"auth_env",
}

var middlewareSubtypes = map[string]bool{
	"cors": true, "ratelimit": true, "logging": true, "recovery": true,
	"timeout": true, "compression": true, "security": true,
	"requestid": true, "metrics": true, "validation": true,
}

var infraProviders = map[string][]string{
	"storage": {"local", "s3", "gcs"},
	"cache":   {"redis", "memory"},
}

var uiComponentSubtypes = map[string]bool{
	"basic": true, "children": true, "state": true,
	"form": true, "card": true, "list": true,
}

var uiHookSubtypes = map[string]bool{
	"basic": true, "fetch": true, "local-storage": true,
	"debounce": true, "media-query": true, "toggle": true,
}

var uiPageSubtypes = map[string]bool{
	"basic": true, "data": true, "form": true,
}

// presets groups shadcn/ui component names for bulk generation.
var presets = map[string][]string{
	"forms":      {"button", "input", "label", "select", "checkbox", "radio-group", "switch", "textarea", "form"},
	"data":       {"table", "card", "badge", "avatar", "skeleton", "pagination"},
	"overlay":    {"dialog", "alert-dialog", "sheet", "popover", "tooltip", "hover-card"},
	"navigation": {"tabs", "accordion", "dropdown-menu", "menubar", "navigation-menu", "command"},
	"feedback":   {"alert", "toast", "sonner", "progress"},
	"layout":     {"separator", "scroll-area", "resizable", "aspect-ratio"},
	"essential":  {"button", "card", "input", "label", "dialog", "alert", "toast"},
}

// templateIDs resolves the ordered template list for a request.
func templateIDs(req Request) ([]string, error) {
	switch req.Kind {
	case KindDomainCRUD:
		return domainTemplates, nil

	case KindAuthLocal, KindAuthGoogle, KindAuthBoth:
		return authTemplates, nil

	case KindMiddleware:
		if !middlewareSubtypes[req.Subtype] {
			return nil, fmt.Errorf("%w: middleware type %q", ErrUnknownKind, req.Subtype)
		}
		return []string{"middleware_" + req.Subtype}, nil

	case KindInfrastructure:
		providers, ok := infraProviders[req.Subtype]
		if !ok {
			return nil, fmt.Errorf("%w: infrastructure type %q", ErrUnknownKind, req.Subtype)
		}
		found := false
		for _, p := range providers {
			if p == req.Provider {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: provider %q for infrastructure type %q", ErrUnknownKind, req.Provider, req.Subtype)
		}
		return []string{
			"infra_" + req.Subtype + "_interface",
			"infra_" + req.Subtype + "_" + req.Provider,
		}, nil

	case KindUIComponent:
		if !uiComponentSubtypes[req.Subtype] {
			return nil, fmt.Errorf("%w: component type %q", ErrUnknownKind, req.Subtype)
		}
		return []string{"ui_component_" + req.Subtype}, nil

	case KindUIHook:
		if !uiHookSubtypes[req.Subtype] {
			return nil, fmt.Errorf("%w: hook type %q", ErrUnknownKind, req.Subtype)
		}
		return []string{"ui_hook_" + strings.ReplaceAll(req.Subtype, "-", "_")}, nil

	case KindUIPage:
		if !uiPageSubtypes[req.Subtype] {
			return nil, fmt.Errorf("%w: page type %q", ErrUnknownKind, req.Subtype)
		}
		return []string{"ui_page_" + req.Subtype}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, req.Kind)
}

// Build resolves a request into a concrete plan. The context supplies
// the values that path patterns reference (snake name, component name,
// middleware subtype and so on).
func Build(req Request, ctx *template.Context) (*Plan, error) {
	ids, err := templateIDs(req)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(ids))
	for _, id := range ids {
		tmpl, ok := template.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: template %q not registered", ErrUnknownKind, id)
		}
		path, err := template.RenderPath(tmpl.PathPattern, ctx)
		if err != nil {
			return nil, fmt.Errorf("plan: resolve path for %s: %w", id, err)
		}
		steps = append(steps, Step{TemplateID: id, Path: path})
	}

	return &Plan{Kind: req.Kind, Steps: steps}, nil
}

// ExpandPreset returns the component names a preset covers, in the
// order they will be generated.
func ExpandPreset(name string) ([]string, error) {
	members, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	out := make([]string, len(members))
	copy(out, members)
	return out, nil
}

// Presets returns the known preset names, unordered.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
