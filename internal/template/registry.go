package template

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed templates
var templatesFS embed.FS

// FS returns the embedded template bodies rooted at templates/.
func FS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The subtree is embedded at build time; a failure here is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return sub
}

// Layer names one architectural tier an artifact belongs to.
type Layer string

const (
	LayerEntity         Layer = "entity"
	LayerRepository     Layer = "repository"
	LayerUseCase        Layer = "usecase"
	LayerHandler        Layer = "handler"
	LayerRouter         Layer = "router"
	LayerAuth           Layer = "auth"
	LayerMiddleware     Layer = "middleware"
	LayerInfrastructure Layer = "infrastructure"
	LayerUI             Layer = "ui"
	LayerProject        Layer = "project"
)

// Template describes one registered artifact: where its body lives in the
// embedded FS and where the rendered file goes, relative to the project
// root. PathPattern is a small template over the same render Context.
type Template struct {
	ID          string
	Layer       Layer
	PathPattern string
	File        string // path inside the embedded FS
}

// registry is the fixed catalog of every template the planner may select.
// Order inside this table is not significant; plan ordering lives in the
// planner's kind tables.
var registry = map[string]Template{
	// Domain CRUD set
	"domain_entity": {
		ID: "domain_entity", Layer: LayerEntity,
		PathPattern: "internal/domain/entity/{{.Snake}}.go",
		File:        "domain/entity.go.tmpl",
	},
	"domain_repository": {
		ID: "domain_repository", Layer: LayerRepository,
		PathPattern: "internal/domain/repository/{{.Snake}}_repository.go",
		File:        "domain/repository.go.tmpl",
	},
	"domain_repository_impl": {
		ID: "domain_repository_impl", Layer: LayerRepository,
		PathPattern: "internal/infrastructure/repository/{{.Snake}}_repository.go",
		File:        "domain/repository_impl.go.tmpl",
	},
	"domain_usecase": {
		ID: "domain_usecase", Layer: LayerUseCase,
		PathPattern: "internal/usecase/{{.Snake}}_usecase.go",
		File:        "domain/usecase.go.tmpl",
	},
	"domain_handler": {
		ID: "domain_handler", Layer: LayerHandler,
		PathPattern: "internal/handler/{{.Snake}}_handler.go",
		File:        "domain/handler.go.tmpl",
	},
	"domain_routes": {
		ID: "domain_routes", Layer: LayerRouter,
		PathPattern: "internal/router/{{.Snake}}_routes.go",
		File:        "domain/routes.go.tmpl",
	},

	// Auth set
	"auth_entity": {
		ID: "auth_entity", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/entity/user.go",
		File:        "auth/entity.go.tmpl",
	},
	"auth_dto": {
		ID: "auth_dto", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/dto/auth_dto.go",
		File:        "auth/dto.go.tmpl",
	},
	"auth_repository": {
		ID: "auth_repository", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/repository/auth_repository.go",
		File:        "auth/repository.go.tmpl",
	},
	"auth_repository_impl": {
		ID: "auth_repository_impl", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/repository/auth_repository_impl.go",
		File:        "auth/repository_impl.go.tmpl",
	},
	"auth_service": {
		ID: "auth_service", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/service/auth_service.go",
		File:        "auth/service.go.tmpl",
	},
	"auth_service_impl": {
		ID: "auth_service_impl", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/service/auth_service_impl.go",
		File:        "auth/service_impl.go.tmpl",
	},
	"auth_handler": {
		ID: "auth_handler", Layer: LayerAuth,
		PathPattern: "internal/domain/auth/handler/auth_handler.go",
		File:        "auth/handler.go.tmpl",
	},
	"auth_jwt": {
		ID: "auth_jwt", Layer: LayerAuth,
		PathPattern: "pkg/jwt/jwt.go",
		File:        "auth/jwt.go.tmpl",
	},
	"auth_middleware": {
		ID: "auth_middleware", Layer: LayerAuth,
		PathPattern: "internal/infrastructure/middleware/auth.go",
		File:        "auth/middleware.go.tmpl",
	},
	"auth_env": {
		ID: "auth_env", Layer: LayerProject,
		PathPattern: ".env.example",
		File:        "auth/env.example.tmpl",
	},

	// Middleware library
	"middleware_cors":        middlewareTemplate("cors"),
	"middleware_ratelimit":   middlewareTemplate("ratelimit"),
	"middleware_logging":     middlewareTemplate("logging"),
	"middleware_recovery":    middlewareTemplate("recovery"),
	"middleware_timeout":     middlewareTemplate("timeout"),
	"middleware_compression": middlewareTemplate("compression"),
	"middleware_security":    middlewareTemplate("security"),
	"middleware_requestid":   middlewareTemplate("requestid"),
	"middleware_metrics":     middlewareTemplate("metrics"),
	"middleware_validation":  middlewareTemplate("validation"),

	// Infrastructure
	"infra_storage_interface": {
		ID: "infra_storage_interface", Layer: LayerInfrastructure,
		PathPattern: "internal/infrastructure/storage/storage.go",
		File:        "infrastructure/storage_interface.go.tmpl",
	},
	"infra_storage_local": infraTemplate("storage", "local"),
	"infra_storage_s3":    infraTemplate("storage", "s3"),
	"infra_storage_gcs":   infraTemplate("storage", "gcs"),
	"infra_cache_interface": {
		ID: "infra_cache_interface", Layer: LayerInfrastructure,
		PathPattern: "internal/infrastructure/cache/cache.go",
		File:        "infrastructure/cache_interface.go.tmpl",
	},
	"infra_cache_redis":  infraTemplate("cache", "redis"),
	"infra_cache_memory": infraTemplate("cache", "memory"),

	// UI components
	"ui_component_basic":    componentTemplate("basic"),
	"ui_component_children": componentTemplate("children"),
	"ui_component_state":    componentTemplate("state"),
	"ui_component_form":     componentTemplate("form"),
	"ui_component_card":     componentTemplate("card"),
	"ui_component_list":     componentTemplate("list"),

	// UI hooks
	"ui_hook_basic":         hookTemplate("basic"),
	"ui_hook_fetch":         hookTemplate("fetch"),
	"ui_hook_local_storage": hookTemplate("local_storage"),
	"ui_hook_debounce":      hookTemplate("debounce"),
	"ui_hook_media_query":   hookTemplate("media_query"),
	"ui_hook_toggle":        hookTemplate("toggle"),

	// UI pages
	"ui_page_basic": pageTemplate("basic"),
	"ui_page_data":  pageTemplate("data"),
	"ui_page_form":  pageTemplate("form"),
}

func middlewareTemplate(subtype string) Template {
	return Template{
		ID:          "middleware_" + subtype,
		Layer:       LayerMiddleware,
		PathPattern: "pkg/middleware/{{.Subtype}}.go",
		File:        "middleware/" + subtype + ".go.tmpl",
	}
}

func infraTemplate(subtype, provider string) Template {
	return Template{
		ID:          "infra_" + subtype + "_" + provider,
		Layer:       LayerInfrastructure,
		PathPattern: "internal/infrastructure/" + subtype + "/{{.Provider}}.go",
		File:        "infrastructure/" + subtype + "_" + provider + ".go.tmpl",
	}
}

func componentTemplate(subtype string) Template {
	return Template{
		ID:          "ui_component_" + subtype,
		Layer:       LayerUI,
		PathPattern: "src/components/{{.Component}}.tsx",
		File:        "ui/component_" + subtype + ".tsx.tmpl",
	}
}

func hookTemplate(subtype string) Template {
	return Template{
		ID:          "ui_hook_" + subtype,
		Layer:       LayerUI,
		PathPattern: "src/hooks/{{.Hook}}.ts",
		File:        "ui/hook_" + subtype + ".ts.tmpl",
	}
}

func pageTemplate(subtype string) Template {
	return Template{
		ID:          "ui_page_" + subtype,
		Layer:       LayerUI,
		PathPattern: "src/pages/{{.Component}}Page.tsx",
		File:        "ui/page_" + subtype + ".tsx.tmpl",
	}
}

// Lookup returns the registered template for an id.
func Lookup(id string) (Template, bool) {
	t, ok := registry[id]
	return t, ok
}

// IDs returns every registered template id, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
