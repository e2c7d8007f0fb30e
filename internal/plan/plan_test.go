package plan

import (
	"errors"
	"testing"

	"github.com/forgekit/forge/internal/spec"
	"github.com/forgekit/forge/internal/template"
)

func domainContext(t *testing.T, name, fields string) *template.Context {
	t.Helper()
	d, err := spec.Parse(name, fields)
	if err != nil {
		t.Fatalf("Parse(%q, %q): %v", name, fields, err)
	}
	return template.NewContext(
		template.WithModule("example.com/shop"),
		template.WithDomain(d),
	)
}

func TestBuildDomainCRUD(t *testing.T) {
	ctx := domainContext(t, "order_item", "sku:string,qty:int")

	p, err := Build(Request{Kind: KindDomainCRUD}, ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantPaths := []string{
		"internal/domain/entity/order_item.go",
		"internal/domain/repository/order_item_repository.go",
		"internal/infrastructure/repository/order_item_repository.go",
		"internal/usecase/order_item_usecase.go",
		"internal/handler/order_item_handler.go",
		"internal/router/order_item_routes.go",
	}
	if len(p.Steps) != len(wantPaths) {
		t.Fatalf("got %d steps, want %d", len(p.Steps), len(wantPaths))
	}
	for i, want := range wantPaths {
		if p.Steps[i].Path != want {
			t.Errorf("step %d path = %q, want %q", i, p.Steps[i].Path, want)
		}
	}
	if p.Steps[0].TemplateID != "domain_entity" {
		t.Errorf("first step = %q, want domain_entity", p.Steps[0].TemplateID)
	}
}

func TestBuildAuth(t *testing.T) {
	ctx := template.NewContext(
		template.WithModule("example.com/shop"),
		template.WithAuthProvider("both"),
	)

	p, err := Build(Request{Kind: KindAuthBoth}, ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Steps) != len(authTemplates) {
		t.Fatalf("got %d steps, want %d", len(p.Steps), len(authTemplates))
	}
	if got := p.Steps[0].Path; got != "internal/domain/auth/entity/user.go" {
		t.Errorf("first path = %q", got)
	}
	if got := p.Steps[len(p.Steps)-1].Path; got != ".env.example" {
		t.Errorf("last path = %q", got)
	}
}

func TestBuildMiddleware(t *testing.T) {
	ctx := template.NewContext(template.WithSubtype("ratelimit"))

	p, err := Build(Request{Kind: KindMiddleware, Subtype: "ratelimit"}, ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(p.Steps))
	}
	if got := p.Steps[0].Path; got != "pkg/middleware/ratelimit.go" {
		t.Errorf("path = %q", got)
	}
}

func TestBuildMiddlewareUnknownSubtype(t *testing.T) {
	ctx := template.NewContext(template.WithSubtype("tracing"))

	_, err := Build(Request{Kind: KindMiddleware, Subtype: "tracing"}, ctx)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestBuildInfrastructure(t *testing.T) {
	tests := []struct {
		subtype  string
		provider string
		want     []string
	}{
		{"storage", "s3", []string{
			"internal/infrastructure/storage/storage.go",
			"internal/infrastructure/storage/s3.go",
		}},
		{"cache", "redis", []string{
			"internal/infrastructure/cache/cache.go",
			"internal/infrastructure/cache/redis.go",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.subtype+"/"+tt.provider, func(t *testing.T) {
			ctx := template.NewContext(
				template.WithSubtype(tt.subtype),
				template.WithProvider(tt.provider),
			)
			p, err := Build(Request{
				Kind:     KindInfrastructure,
				Subtype:  tt.subtype,
				Provider: tt.provider,
			}, ctx)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if len(p.Steps) != len(tt.want) {
				t.Fatalf("got %d steps, want %d", len(p.Steps), len(tt.want))
			}
			for i, want := range tt.want {
				if p.Steps[i].Path != want {
					t.Errorf("step %d path = %q, want %q", i, p.Steps[i].Path, want)
				}
			}
		})
	}
}

func TestBuildInfrastructureRejectsBadCombos(t *testing.T) {
	tests := []struct {
		name     string
		subtype  string
		provider string
	}{
		{"unknown type", "queue", "redis"},
		{"wrong provider for storage", "storage", "redis"},
		{"wrong provider for cache", "cache", "s3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := template.NewContext(
				template.WithSubtype(tt.subtype),
				template.WithProvider(tt.provider),
			)
			_, err := Build(Request{
				Kind:     KindInfrastructure,
				Subtype:  tt.subtype,
				Provider: tt.provider,
			}, ctx)
			if !errors.Is(err, ErrUnknownKind) {
				t.Fatalf("err = %v, want ErrUnknownKind", err)
			}
		})
	}
}

func TestBuildUI(t *testing.T) {
	t.Run("component", func(t *testing.T) {
		ctx := template.NewContext(template.WithComponent("user-card"))
		p, err := Build(Request{Kind: KindUIComponent, Subtype: "card"}, ctx)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if got := p.Steps[0].Path; got != "src/components/UserCard.tsx" {
			t.Errorf("path = %q", got)
		}
	})

	t.Run("hook with hyphenated subtype", func(t *testing.T) {
		ctx := template.NewContext(template.WithHook("local-storage"))
		p, err := Build(Request{Kind: KindUIHook, Subtype: "local-storage"}, ctx)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if got := p.Steps[0].TemplateID; got != "ui_hook_local_storage" {
			t.Errorf("template = %q", got)
		}
		if got := p.Steps[0].Path; got != "src/hooks/useLocalStorage.ts" {
			t.Errorf("path = %q", got)
		}
	})

	t.Run("page", func(t *testing.T) {
		ctx := template.NewContext(template.WithComponent("user-profile"))
		p, err := Build(Request{Kind: KindUIPage, Subtype: "data"}, ctx)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if got := p.Steps[0].Path; got != "src/pages/UserProfilePage.tsx" {
			t.Errorf("path = %q", got)
		}
	})
}

func TestExpandPreset(t *testing.T) {
	members, err := ExpandPreset("essential")
	if err != nil {
		t.Fatalf("ExpandPreset: %v", err)
	}
	want := []string{"button", "card", "input", "label", "dialog", "alert", "toast"}
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("member %d = %q, want %q", i, members[i], want[i])
		}
	}
}

func TestExpandPresetUnknown(t *testing.T) {
	_, err := ExpandPreset("widgets")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestEveryPlannedTemplateIsRegistered(t *testing.T) {
	var all []string
	all = append(all, domainTemplates...)
	all = append(all, authTemplates...)
	for sub := range middlewareSubtypes {
		all = append(all, "middleware_"+sub)
	}
	for sub, providers := range infraProviders {
		all = append(all, "infra_"+sub+"_interface")
		for _, p := range providers {
			all = append(all, "infra_"+sub+"_"+p)
		}
	}
	for _, id := range all {
		if _, ok := template.Lookup(id); !ok {
			t.Errorf("template %q referenced by planner but not registered", id)
		}
	}
}
