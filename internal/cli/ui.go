package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/config"
	"github.com/forgekit/forge/internal/manifest"
	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/template"
	"github.com/forgekit/forge/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Generate React components, hooks and pages",
}

var uiComponentTypes = []string{"basic", "children", "state", "form", "card", "list"}
var uiHookTypes = []string{"basic", "fetch", "local-storage", "debounce", "media-query", "toggle"}
var uiPageTypes = []string{"basic", "data", "form"}

var uiComponentFlags struct {
	projectFlags
	variant string
}

var uiComponentCmd = &cobra.Command{
	Use:   "component <name>",
	Short: "Generate a typed React component",
	Long: fmt.Sprintf(`Generate a .tsx component under src/components/.

Types: %s

Example:
  forge ui component user-card --type card`, strings.Join(uiComponentTypes, ", ")),
	Args:    cobra.ExactArgs(1),
	PreRunE: validateVariant(&uiComponentFlags.variant, uiComponentTypes, "component"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd,
			plan.Request{Kind: plan.KindUIComponent, Subtype: uiComponentFlags.variant},
			&uiComponentFlags.projectFlags,
			template.WithSubtype(uiComponentFlags.variant),
			template.WithComponent(args[0]),
		)
	},
}

var uiHookFlags struct {
	projectFlags
	variant string
}

var uiHookCmd = &cobra.Command{
	Use:   "hook <name>",
	Short: "Generate a typed React hook",
	Long: fmt.Sprintf(`Generate a .ts hook under src/hooks/. The use prefix is added
when the name does not carry one.

Types: %s

Example:
  forge ui hook window-size --type basic`, strings.Join(uiHookTypes, ", ")),
	Args:    cobra.ExactArgs(1),
	PreRunE: validateVariant(&uiHookFlags.variant, uiHookTypes, "hook"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd,
			plan.Request{Kind: plan.KindUIHook, Subtype: uiHookFlags.variant},
			&uiHookFlags.projectFlags,
			template.WithSubtype(uiHookFlags.variant),
			template.WithHook(args[0]),
		)
	},
}

var uiPageFlags struct {
	projectFlags
	variant string
}

var uiPageCmd = &cobra.Command{
	Use:   "page <name>",
	Short: "Generate a React page",
	Long: fmt.Sprintf(`Generate a .tsx page under src/pages/. The Page suffix is appended
to the component name.

Types: %s

Example:
  forge ui page user-profile --type data`, strings.Join(uiPageTypes, ", ")),
	Args:    cobra.ExactArgs(1),
	PreRunE: validateVariant(&uiPageFlags.variant, uiPageTypes, "page"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd,
			plan.Request{Kind: plan.KindUIPage, Subtype: uiPageFlags.variant},
			&uiPageFlags.projectFlags,
			template.WithSubtype(uiPageFlags.variant),
			template.WithComponent(args[0]),
		)
	},
}

var uiPresetFlags projectFlags

var uiPresetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Generate a group of basic components",
	Long: `Generate every component of a named preset as a basic component.

Presets: forms, data, overlay, navigation, feedback, layout, essential

Example:
  forge ui preset essential`,
	Args: cobra.ExactArgs(1),
	RunE: runUIPreset,
}

func validateVariant(variant *string, valid []string, noun string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		for _, v := range valid {
			if v == *variant {
				return nil
			}
		}
		return fmt.Errorf("cli: unknown %s type %q (%s)", noun, *variant, strings.Join(valid, ", "))
	}
}

// runUIPreset expands the preset and generates each member as a basic
// component, merging the per-component outcomes into one report.
func runUIPreset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	members, err := plan.ExpandPreset(args[0])
	if err != nil {
		names := plan.Presets()
		sort.Strings(names)
		return fmt.Errorf("%w (presets: %s)", err, strings.Join(names, ", "))
	}

	proj, err := config.LoadUI(uiPresetFlags.projectPath)
	if err != nil {
		return err
	}
	policy, err := resolvePolicy(&uiPresetFlags, proj.Defaults)
	if err != nil {
		return err
	}

	bar := deps.Progress.Start("preset "+args[0], len(members))
	merged := &manifest.Manifest{}

	for _, name := range members {
		bar.SetTitle(name)

		tctx := template.NewContext(
			template.WithSubtype("basic"),
			template.WithComponent(name),
		)
		p, err := plan.Build(plan.Request{Kind: plan.KindUIComponent, Subtype: "basic"}, tctx)
		if err != nil {
			bar.Done()
			return err
		}
		applyUIDir(p, proj.UIDir())

		m, execErr := deps.Writer.Execute(cmd.Context(), p, tctx, proj.Root, policy)
		for _, e := range m.Entries {
			if e.Outcome == manifest.Failed {
				merged.AddFailure(e.Path, e.Err)
			} else {
				merged.Add(e.Path, e.Outcome)
			}
		}
		if execErr != nil {
			bar.Done()
			ui.Report(out, deps.Theme, merged)
			return execErr
		}

		bar.Increment(1)
	}
	bar.Done()

	ui.Report(out, deps.Theme, merged)

	if merged.State() == manifest.PartiallyCompleted {
		return fmt.Errorf("cli: %d of %d components failed", merged.Count(manifest.Failed), len(members))
	}

	if guide := presetNextSteps(args[0], members); guide != "" {
		return ui.RenderMarkdown(out, deps.Theme, deps.Headless, guide)
	}
	return nil
}

func init() {
	uiComponentFlags.register(uiComponentCmd)
	uiComponentCmd.Flags().StringVar(&uiComponentFlags.variant, "type", "basic", "component type")

	uiHookFlags.register(uiHookCmd)
	uiHookCmd.Flags().StringVar(&uiHookFlags.variant, "type", "basic", "hook type")

	uiPageFlags.register(uiPageCmd)
	uiPageCmd.Flags().StringVar(&uiPageFlags.variant, "type", "basic", "page type")

	uiPresetFlags.register(uiPresetCmd)

	uiCmd.AddCommand(uiComponentCmd, uiHookCmd, uiPageCmd, uiPresetCmd)
	rootCmd.AddCommand(uiCmd)
}
