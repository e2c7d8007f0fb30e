package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/forge/internal/config"
	"github.com/forgekit/forge/internal/manifest"
	"github.com/forgekit/forge/internal/plan"
	"github.com/forgekit/forge/internal/template"
	"github.com/forgekit/forge/internal/ui"
	"github.com/forgekit/forge/internal/writer"
)

var errConflictingPolicies = errors.New("cli: --force and --skip-existing are mutually exclusive")

// projectFlags are the flags every generating command shares.
type projectFlags struct {
	projectPath  string
	force        bool
	skipExisting bool
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.projectPath, "project-path", ".", "target project root")
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite existing files")
	cmd.Flags().BoolVar(&f.skipExisting, "skip-existing", false, "leave existing files untouched")
	cmd.MarkFlagsMutuallyExclusive("force", "skip-existing")
}

// resolvePolicy picks the conflict policy: flags first, then the
// project's forge.yaml default, then fail-on-existing.
func resolvePolicy(f *projectFlags, defaults config.Defaults) (writer.ConflictPolicy, error) {
	switch {
	case f.force && f.skipExisting:
		return writer.FailOnExisting, errConflictingPolicies
	case f.force:
		return writer.Overwrite, nil
	case f.skipExisting:
		return writer.SkipExisting, nil
	}

	switch defaults.OnConflict {
	case "", "fail":
		return writer.FailOnExisting, nil
	case "skip-existing":
		return writer.SkipExisting, nil
	case "overwrite":
		return writer.Overwrite, nil
	}
	return writer.FailOnExisting, fmt.Errorf("cli: unknown on_conflict value %q in forge.yaml", defaults.OnConflict)
}

// isUIKind reports whether a kind writes frontend artifacts. UI kinds
// skip go.mod resolution and honor the ui_dir override.
func isUIKind(k plan.Kind) bool {
	switch k {
	case plan.KindUIComponent, plan.KindUIHook, plan.KindUIPage:
		return true
	}
	return false
}

// applyUIDir moves frontend steps from the default "src" directory to
// the project's configured one.
func applyUIDir(p *plan.Plan, uiDir string) {
	if uiDir == "src" {
		return
	}
	for i, step := range p.Steps {
		if rest, ok := strings.CutPrefix(step.Path, "src/"); ok {
			p.Steps[i].Path = uiDir + "/" + rest
		}
	}
}

// loadProject resolves the target project for a request kind.
func loadProject(req plan.Request, f *projectFlags) (*config.Project, error) {
	if isUIKind(req.Kind) {
		return config.LoadUI(f.projectPath)
	}
	return config.Load(f.projectPath)
}

// runPlan is the shared execution path: load the target project, build
// the plan, write it with progress, report the manifest and print the
// kind's next-steps guide.
func runPlan(cmd *cobra.Command, req plan.Request, f *projectFlags, ctxOpts ...template.ContextOption) error {
	out := cmd.OutOrStdout()

	proj, err := loadProject(req, f)
	if err != nil {
		return err
	}

	policy, err := resolvePolicy(f, proj.Defaults)
	if err != nil {
		return err
	}

	tctx := template.NewContext(append([]template.ContextOption{
		template.WithModule(proj.Module),
	}, ctxOpts...)...)

	p, err := plan.Build(req, tctx)
	if err != nil {
		return err
	}
	if isUIKind(req.Kind) {
		applyUIDir(p, proj.UIDir())
	}

	bar := deps.Progress.Start(req.Kind.String(), len(p.Steps))
	deps.Writer.OnStep(func(step plan.Step) {
		bar.SetTitle(step.Path)
		bar.Increment(1)
	})
	m, execErr := deps.Writer.Execute(cmd.Context(), p, tctx, proj.Root, policy)
	deps.Writer.OnStep(nil)
	bar.Done()

	ui.Report(out, deps.Theme, m)

	if execErr != nil {
		return execErr
	}
	if m.State() == manifest.PartiallyCompleted {
		return fmt.Errorf("cli: %d of %d files failed", m.Count(manifest.Failed), len(p.Steps))
	}

	if guide := nextSteps(req, tctx, proj.Module); guide != "" {
		if err := ui.RenderMarkdown(out, deps.Theme, deps.Headless, guide); err != nil {
			return err
		}
	}
	return nil
}
