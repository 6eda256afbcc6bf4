package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/mpgen/internal/config"
	"github.com/modu-ai/mpgen/pkg/version"
)

// NewRootCmd builds the mpgen command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mpgen",
		Short: "Scaffold pages and components for mini-program projects",
		Long: `mpgen creates pages and components from templates and keeps
app.json in sync with the files it creates.

Pages are registered in the main bundle or in a sub-package; components
are created globally, inside a sub-package or next to a page.`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if deps != nil {
				return nil
			}
			return InitDependencies(cmd)
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("mpgen %s (commit: %s, built: %s)\n",
		version.GetVersion(), version.GetCommit(), version.GetDate()))

	pf := rootCmd.PersistentFlags()
	pf.String("entry", config.DefaultEntry, "Project directory containing app.json")
	pf.String("templates", "", "Template root directory (default: built-in templates)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(newInitCmd(), newListCmd(), newConfigCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
