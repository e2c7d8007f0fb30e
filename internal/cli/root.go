package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgekit/forge/pkg/version"
)

// noColor disables styled output and interactive components. Set by the
// persistent --no-color flag before any RunE executes.
var noColor bool

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "forge: layered-architecture code generator",
	Long: `forge scaffolds layered Go backends and React frontends from short
specifications.

It generates complete gin + gorm CRUD stacks (entity, repository, usecase,
handler, routes), JWT and OAuth authentication sets, a middleware library,
storage and cache infrastructure, and typed React components, hooks and
pages. Generated files land in your project tree; forge never edits files
it did not create unless told to overwrite.`,
	Version: version.GetVersion(),
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		InitDependencies()
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("forge %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}
