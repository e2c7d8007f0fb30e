package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/template"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add cross-cutting artifact sets to a project",
}

// --- add auth ---

var authProviders = map[string]plan.Kind{
	"local":  plan.KindAuthLocal,
	"google": plan.KindAuthGoogle,
	"both":   plan.KindAuthBoth,
}

var addAuthFlags struct {
	projectFlags
	provider string
}

var addAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Add an authentication stack",
	Long: `Add a complete authentication stack: user entity, DTOs, repository,
service, gin handler, JWT token package, auth middleware and an
.env.example fragment.

Providers:
  local    email + password with bcrypt hashing
  google   Google OAuth sign-in
  both     union of local and google

Example:
  forge add auth --provider local`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := authProviders[addAuthFlags.provider]; !ok {
			return fmt.Errorf("cli: unknown auth provider %q (local, google or both)", addAuthFlags.provider)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd,
			plan.Request{Kind: authProviders[addAuthFlags.provider]},
			&addAuthFlags.projectFlags,
			template.WithAuthProvider(addAuthFlags.provider),
		)
	},
}

// --- add middleware ---

var middlewareTypes = []string{
	"cors", "ratelimit", "logging", "recovery", "timeout",
	"compression", "security", "requestid", "metrics", "validation",
}

var addMiddlewareFlags struct {
	projectFlags
	mwType string
}

var addMiddlewareCmd = &cobra.Command{
	Use:   "middleware",
	Short: "Add a gin middleware",
	Long: fmt.Sprintf(`Add one gin middleware under pkg/middleware/.

Types: %s

Example:
  forge add middleware --type ratelimit`, strings.Join(middlewareTypes, ", ")),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range middlewareTypes {
			if t == addMiddlewareFlags.mwType {
				return nil
			}
		}
		return fmt.Errorf("cli: unknown middleware type %q", addMiddlewareFlags.mwType)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd,
			plan.Request{Kind: plan.KindMiddleware, Subtype: addMiddlewareFlags.mwType},
			&addMiddlewareFlags.projectFlags,
			template.WithSubtype(addMiddlewareFlags.mwType),
		)
	},
}

// --- add infrastructure ---

var infraProviders = map[string][]string{
	"storage": {"local", "s3", "gcs"},
	"cache":   {"redis", "memory"},
}

var addInfraFlags struct {
	projectFlags
	infraType string
	provider  string
}

var addInfraCmd = &cobra.Command{
	Use:   "infrastructure",
	Short: "Add a storage or cache layer",
	Long: `Add an infrastructure layer: the interface plus one provider
implementation under internal/infrastructure/.

Combinations:
  --type storage --provider local|s3|gcs
  --type cache   --provider redis|memory

Example:
  forge add infrastructure --type cache --provider redis`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		providers, ok := infraProviders[addInfraFlags.infraType]
		if !ok {
			types := make([]string, 0, len(infraProviders))
			for t := range infraProviders {
				types = append(types, t)
			}
			sort.Strings(types)
			return fmt.Errorf("cli: unknown infrastructure type %q (%s)", addInfraFlags.infraType, strings.Join(types, ", "))
		}
		for _, p := range providers {
			if p == addInfraFlags.provider {
				return nil
			}
		}
		return fmt.Errorf("cli: provider %q not valid for type %q (%s)",
			addInfraFlags.provider, addInfraFlags.infraType, strings.Join(providers, ", "))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd,
			plan.Request{
				Kind:     plan.KindInfrastructure,
				Subtype:  addInfraFlags.infraType,
				Provider: addInfraFlags.provider,
			},
			&addInfraFlags.projectFlags,
			template.WithSubtype(addInfraFlags.infraType),
			template.WithProvider(addInfraFlags.provider),
		)
	},
}

func init() {
	addAuthFlags.register(addAuthCmd)
	addAuthCmd.Flags().StringVar(&addAuthFlags.provider, "provider", "local", "auth provider: local, google or both")

	addMiddlewareFlags.register(addMiddlewareCmd)
	addMiddlewareCmd.Flags().StringVar(&addMiddlewareFlags.mwType, "type", "", "middleware type")
	_ = addMiddlewareCmd.MarkFlagRequired("type")

	addInfraFlags.register(addInfraCmd)
	addInfraCmd.Flags().StringVar(&addInfraFlags.infraType, "type", "", "infrastructure type: storage or cache")
	addInfraCmd.Flags().StringVar(&addInfraFlags.provider, "provider", "", "provider implementation")
	_ = addInfraCmd.MarkFlagRequired("type")
	_ = addInfraCmd.MarkFlagRequired("provider")

	addCmd.AddCommand(addAuthCmd, addMiddlewareCmd, addInfraCmd)
	rootCmd.AddCommand(addCmd)
}
