package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/cli/wizard"
	"github.com/forgekit/forge/internal/ident"
	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/spec"
	"github.com/forgekit/forge/internal/template"
)

var errNameRequired = errors.New("cli: domain name required (no TTY for the wizard)")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a layered artifact set",
}

var generateDomainFlags struct {
	projectFlags
	fields string
}

var generateDomainCmd = &cobra.Command{
	Use:   "domain [name]",
	Short: "Generate a CRUD stack for one domain",
	Long: `Generate the six-layer CRUD stack for a domain: entity, repository
interface, gorm repository, usecase, gin handler and route registration.

The name is a lowercase singular noun; fields are name:type pairs where a
trailing ! marks the field required.

Examples:
  forge generate domain product --fields "title:string!,price:float64"
  forge generate domain order_item
  forge generate domain            # interactive wizard on a TTY`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerateDomain,
}

func init() {
	generateDomainFlags.register(generateDomainCmd)
	generateDomainCmd.Flags().StringVar(&generateDomainFlags.fields, "fields", "", "comma-separated name:type field list")

	generateCmd.AddCommand(generateDomainCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerateDomain(cmd *cobra.Command, args []string) error {
	name := ""
	fields := generateDomainFlags.fields
	if len(args) > 0 {
		name = args[0]
	}

	if name == "" {
		if deps.Headless.IsHeadless() {
			return errNameRequired
		}
		input, err := wizard.RunDomain()
		if err != nil {
			return err
		}
		name = input.Name
		fields = input.Fields
	}

	d, err := spec.Parse(name, fields)
	if err != nil {
		return err
	}

	// An s-ending name takes the sibilant rule, which doubles an already
	// plural noun ("orders" -> "orderses"). Surface it instead of guessing.
	if ident.LooksPlural(d.Name) {
		fmt.Fprintln(cmd.OutOrStdout(), deps.Theme.Warning(
			fmt.Sprintf("note: %q ends in 's'; table and route names use the plural %q", d.Name, d.Forms.Plural)))
	}

	return runPlan(cmd,
		plan.Request{Kind: plan.KindDomainCRUD},
		&generateDomainFlags.projectFlags,
		template.WithDomain(d),
	)
}
