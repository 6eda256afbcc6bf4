package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/modu-ai/mpgen/internal/fsutil"
	"github.com/modu-ai/mpgen/internal/manifest"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the pages registered in app.json",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().Bool("raw", false, "Print Markdown without terminal styling")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	m, err := d.LoadManifest()
	if err != nil {
		return fatal(cmd, "Cannot read app.json", err)
	}

	md := manifestMarkdown(m)
	if getBoolFlag(cmd, "raw") {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	out, err := renderMarkdown(md, d.Config.NoColor)
	if err != nil {
		return fmt.Errorf("render page list: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// manifestMarkdown lists pages per bundle with the short keys the
// questionnaire offers.
func manifestMarkdown(m *manifest.Manifest) string {
	var b strings.Builder
	b.WriteString("# Pages\n\n")

	writeBundle(&b, "Main bundle", m.Pages())
	for _, sp := range m.SubPackages() {
		writeBundle(&b, "Sub-package `"+sp.Root+"`", sp.Pages)
	}
	return b.String()
}

func writeBundle(b *strings.Builder, title string, pages []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(pages) == 0 {
		b.WriteString("_no pages_\n\n")
		return
	}
	b.WriteString("| Key | Path |\n| --- | --- |\n")
	for _, p := range pages {
		fmt.Fprintf(b, "| %s | `%s` |\n", fsutil.LastSegment(p), p)
	}
	b.WriteString("\n")
}

func renderMarkdown(md string, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
