package cli

import (
	"fmt"
	"strings"

	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/template"
)

// middlewareDeps maps middleware types to the modules their generated
// code imports, for the go get hint.
var middlewareDeps = map[string][]string{
	"cors":        {"github.com/gin-contrib/cors"},
	"ratelimit":   {"golang.org/x/time/rate"},
	"compression": {"github.com/gin-contrib/gzip"},
	"requestid":   {"github.com/google/uuid"},
	"metrics":     {"github.com/prometheus/client_golang/prometheus"},
	"validation":  {"github.com/go-playground/validator/v10"},
}

// infraDeps maps infrastructure providers to their SDK modules.
var infraDeps = map[string][]string{
	"s3": {
		"github.com/aws/aws-sdk-go-v2/config",
		"github.com/aws/aws-sdk-go-v2/service/s3",
	},
	"gcs":   {"cloud.google.com/go/storage"},
	"redis": {"github.com/redis/go-redis/v9"},
}

// nextSteps produces the markdown epilogue for one generation run.
func nextSteps(req plan.Request, tctx *template.Context, module string) string {
	switch req.Kind {
	case plan.KindDomainCRUD:
		return domainNextSteps(tctx, module)
	case plan.KindAuthLocal, plan.KindAuthGoogle, plan.KindAuthBoth:
		return authNextSteps(tctx, module)
	case plan.KindMiddleware:
		return middlewareNextSteps(req.Subtype)
	case plan.KindInfrastructure:
		return infraNextSteps(req.Subtype, req.Provider)
	case plan.KindUIComponent:
		return fmt.Sprintf(`## Next steps

1. Export the component from your index file:
   `+"`export { %s } from './components/%s';`"+`
2. Import it where needed:
   `+"`import { %s } from '@/components/%s';`"+`
`, tctx.Component, tctx.Component, tctx.Component, tctx.Component)
	case plan.KindUIHook:
		return fmt.Sprintf(`## Next steps

1. Import the hook:
   `+"`import { %s } from '@/hooks/%s';`"+`
`, tctx.Hook, tctx.Hook)
	case plan.KindUIPage:
		guide := fmt.Sprintf(`## Next steps

1. Add a route for the page:
   `+"`<Route path=\"/%s\" element={<%sPage />} />"+"`"+`
`, tctx.Kebab, tctx.Component)
		if req.Subtype == "data" {
			guide += "2. Install TanStack Query if you have not:\n   `npm install @tanstack/react-query`\n"
		}
		return guide
	}
	return ""
}

func domainNextSteps(tctx *template.Context, module string) string {
	return fmt.Sprintf(`## Next steps

1. Register the entity for migration in your database setup:

   `+"```go"+`
   db.AutoMigrate(&entity.%s{})
   `+"```"+`

2. Wire the routes in your router setup:

   `+"```go"+`
   router.Register%sRoutes(api, db)
   `+"```"+`

3. The handler exposes CRUD endpoints under `+"`/%s`"+`:
   POST, GET, GET/:id, PUT/:id, DELETE/:id

Imports resolve against `+"`%s`"+`.
`, tctx.Entity, tctx.Entity, tctx.SnakePlural, module)
}

func authNextSteps(tctx *template.Context, module string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n1. Install the auth dependencies:\n\n   ```sh\n")
	b.WriteString("   go get github.com/golang-jwt/jwt/v5\n")
	if tctx.WithPassword {
		b.WriteString("   go get golang.org/x/crypto/bcrypt\n")
	}
	if tctx.WithGoogle {
		b.WriteString("   go get golang.org/x/oauth2\n")
	}
	b.WriteString("   ```\n\n")
	b.WriteString("2. Copy `.env.example` to `.env` and fill in the secrets.\n")
	b.WriteString("3. Register the user entity for migration: `db.AutoMigrate(&entity.User{})`.\n")
	b.WriteString("4. Mount the handler and protect routes with `middleware.AuthMiddleware(jwtService)`.\n\n")
	fmt.Fprintf(&b, "Imports resolve against `%s`.\n", module)
	return b.String()
}

func middlewareNextSteps(subtype string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	step := 1
	if mods := middlewareDeps[subtype]; len(mods) > 0 {
		fmt.Fprintf(&b, "%d. Install the dependency:\n\n   ```sh\n", step)
		for _, mod := range mods {
			fmt.Fprintf(&b, "   go get %s\n", mod)
		}
		b.WriteString("   ```\n\n")
		step++
	}
	fmt.Fprintf(&b, "%d. Register it on your engine:\n\n   ```go\n   r.Use(%s)\n   ```\n",
		step, middlewareUsage(subtype))
	return b.String()
}

// middlewareUsage is the registration call for a generated middleware,
// matching its constructor signature.
func middlewareUsage(subtype string) string {
	switch subtype {
	case "cors":
		return "middleware.CORS(middleware.DefaultCORSConfig())"
	case "ratelimit":
		return `middleware.RateLimit(middleware.RateLimitConfig{RequestsPerSecond: 10, Burst: 20, Strategy: "ip"})`
	case "logging":
		return "middleware.Logging(middleware.LoggingConfig{})"
	case "security":
		return "middleware.Security(middleware.DefaultSecurityConfig())"
	case "timeout":
		return "middleware.Timeout(30 * time.Second)"
	case "requestid":
		return "middleware.RequestID()"
	default:
		return "middleware." + strings.ToUpper(subtype[:1]) + subtype[1:] + "()"
	}
}

func infraNextSteps(subtype, provider string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	step := 1
	if mods := infraDeps[provider]; len(mods) > 0 {
		fmt.Fprintf(&b, "%d. Install the SDK:\n\n   ```sh\n", step)
		for _, mod := range mods {
			fmt.Fprintf(&b, "   go get %s\n", mod)
		}
		b.WriteString("   ```\n\n")
		step++
	}
	fmt.Fprintf(&b, "%d. Construct the %s %s provider in your composition root and inject the `%s.%s` interface where needed.\n",
		step, provider, subtype, subtype, strings.ToUpper(subtype[:1])+subtype[1:])
	return b.String()
}

// presetNextSteps lists what a preset produced.
func presetNextSteps(name string, members []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Preset %s\n\nGenerated %d components. Export them from your index file:\n\n```ts\n", name, len(members))
	for _, m := range members {
		comp := template.NewContext(template.WithComponent(m)).Component
		fmt.Fprintf(&b, "export { %s } from './components/%s';\n", comp, comp)
	}
	b.WriteString("```\n")
	return b.String()
}
