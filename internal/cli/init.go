package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/mpgen/internal/manifest"
	"github.com/modu-ai/mpgen/internal/scaffold"
	"github.com/modu-ai/mpgen/internal/wizard"
	"github.com/modu-ai/mpgen/pkg/models"
)

// initFlagAnswers maps init flags to the questions they answer.
var initFlagAnswers = []struct {
	flag     string
	question string
}{
	{"flavor", wizard.QAppFlavor},
	{"kind", wizard.QKind},
	{"name", wizard.QName},
	{"module", wizard.QModulePath},
	{"scope", wizard.QComponentScope},
	{"parent-module", wizard.QParentModule},
	{"parent-page", wizard.QParentPage},
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a page or component",
		Long: `Create a page or component from a template.

Without flags mpgen asks for the app flavor, the kind, the name and where
to put the result. Flags answer the matching question up front; with
--non-interactive (or when stdin is not a terminal) every question must be
answered by a flag or have a default.

Examples:
  mpgen init                                    Ask everything
  mpgen init cart --kind page --module order    Page in the "order" sub-package
  mpgen init badge --kind component --scope page --parent-page detail`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	f := cmd.Flags()
	f.String("flavor", "", "App flavor (template set), e.g. weapp or alipay")
	f.String("kind", "", "What to create: page or component")
	f.String("name", "", "Page or component name")
	f.String("module", "", `Sub-package key for a page ("none" for the main bundle)`)
	f.String("scope", "", "Component scope: global, module or page")
	f.String("parent-module", "", "Sub-package key of a module component")
	f.String("parent-page", "", "Page key of a page component")
	f.Bool("non-interactive", false, "Never prompt; use flags and defaults")
	f.Bool("dry-run", false, "Show what would be created without writing anything")
	return cmd
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// flagAnswers collects the questionnaire answers given on the command line.
func flagAnswers(cmd *cobra.Command, args []string) map[string]string {
	answers := make(map[string]string, len(initFlagAnswers))
	for _, fa := range initFlagAnswers {
		if v := strings.TrimSpace(getStringFlag(cmd, fa.flag)); v != "" {
			answers[fa.question] = v
		}
	}
	if _, ok := answers[wizard.QName]; !ok && len(args) == 1 {
		answers[wizard.QName] = args[0]
	}
	return answers
}

// runInit runs the questionnaire and the scaffold. Only missing manifests
// and templates fail the command; every other problem is reported and the
// command succeeds.
func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	d := deps
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	m, err := d.LoadManifest()
	if err != nil {
		return fatal(cmd, "Cannot read app.json", err, "Run mpgen from the project directory or pass --entry.")
	}
	templates, err := d.Templates()
	if err != nil {
		return fatal(cmd, "Cannot open templates", err, "Check --templates or template_root in .mpgen.yaml.")
	}

	answers := flagAnswers(cmd, args)
	if getBoolFlag(cmd, "non-interactive") {
		d.Headless.ForceHeadless(true)
	}
	d.Headless.SetDefaults(answers)

	var prompter wizard.Prompter
	if d.Headless.IsHeadless() {
		prompter = wizard.NewHeadlessPrompter(d.Headless.Defaults())
	} else {
		prompter = wizard.NewPrefilled(answers, wizard.NewFormPrompter(d.Config.NoColor))
	}

	session := wizard.NewSession(m, d.Config.Flavors)
	result, err := wizard.Run(wizard.DefaultQuestions(session), prompter)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, cliMuted.Render("Cancelled. Nothing was written."))
			return nil
		}
		_, _ = fmt.Fprintln(out, renderErrorCard("Incomplete answers", err, headlessHint(err)...))
		return nil
	}
	req := result.Request()
	d.Logger.Debug("scaffold request", "flavor", req.AppFlavor, "kind", req.Kind, "name", req.Name)

	reporter := newProgressReporter(d.Progress)
	defer reporter.Close()

	orch := scaffold.New(scaffold.Options{
		Entry:         d.Config.Entry,
		Manifest:      m,
		Templates:     templates,
		ComponentsDir: d.Config.ComponentsDir,
		Reporter:      reporter,
		Logger:        d.Logger,
		DryRun:        getBoolFlag(cmd, "dry-run"),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := orch.Execute(ctx, req)
	reporter.Close()
	if err != nil {
		if scaffold.IsFatal(err) {
			return fatal(cmd, "Cannot open templates", err)
		}
		_, _ = fmt.Fprintln(out, renderErrorCard(failureTitle(req.Kind), err, failureHints(res, err)...))
		return nil
	}

	_, _ = fmt.Fprintln(out, renderSuccessCard(successTitle(res), renderKeyValueLines(resultPairs(d.Config.Entry, res))))
	return nil
}

// fatal renders err and returns it so the process exits non-zero.
func fatal(cmd *cobra.Command, title string, err error, hints ...string) error {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderErrorCard(title, err, hints...))
	cmd.SilenceErrors = true
	return err
}

func headlessHint(err error) []string {
	if errors.Is(err, wizard.ErrMissingAnswer) {
		return []string{"Pass the missing value as a flag, or run mpgen init in a terminal."}
	}
	if errors.Is(err, wizard.ErrEmptyName) || errors.Is(err, wizard.ErrInvalidName) {
		return []string{"Names may use letters, digits, '-' and '_'."}
	}
	return nil
}

func successTitle(res *scaffold.Result) string {
	if res.DryRun {
		return fmt.Sprintf("Dry run: %s not created", res.Kind)
	}
	if res.Kind == models.KindPage {
		return "Page created"
	}
	return "Component created"
}

func failureTitle(kind models.Kind) string {
	if kind == models.KindComponent {
		return "Component not created"
	}
	return "Page not created"
}

func failureHints(res *scaffold.Result, err error) []string {
	var hints []string
	if res != nil && len(res.Files) > 0 {
		hints = append(hints, fmt.Sprintf("%d file(s) were written to %s and left in place.", len(res.Files), res.Dest))
	}
	if errors.Is(err, manifest.ErrModuleNotFound) {
		hints = append(hints, "app.json was not changed; add the page entry by hand or remove the files.")
	}
	if res != nil {
		hints = append(hints, "Stopped after: "+res.State.String())
	}
	return hints
}

func resultPairs(entry string, res *scaffold.Result) []kvPair {
	pairs := []kvPair{{"Directory", relPath(entry, res.Dest)}}
	names := make([]string, len(res.Files))
	for i, f := range res.Files {
		names[i] = filepath.Base(f)
	}
	pairs = append(pairs, kvPair{"Files", strings.Join(names, ", ")})
	if res.ManifestEntry != "" {
		label := "Registered"
		if res.DryRun {
			label = "Would register"
		}
		pairs = append(pairs, kvPair{label, res.ManifestEntry})
	}
	return pairs
}

func relPath(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}
