// Package cli implements the relaypulse command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/voun8/relaypulse/internal/app"
	"github.com/voun8/relaypulse/internal/commands"
	"github.com/voun8/relaypulse/internal/config"
)

// env carries the flag values and collaborators shared by all commands.
type env struct {
	configPath string
	prefsPath  string

	// Swapped in tests.
	newFacade func(cfg config.Config) *commands.Facade
	runApp    func(ctx context.Context, opts app.Options) error
}

// NewRootCmd builds the relaypulse command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&env{newFacade: app.NewFacade, runApp: app.Run})
}

func newRootCmd(e *env) *cobra.Command {
	var noTray bool
	var intervalMS uint64

	root := &cobra.Command{
		Use:   "relaypulse",
		Short: "Watch the RelayPulse status endpoint from the system tray",
		Long: `RelayPulse polls https://relaypulse.top/api/status and shows the latest
report in a terminal window, with a tray icon to bring the window back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runApp(cmd.Context(), app.Options{
				ConfigPath: e.configPath,
				PrefsPath:  e.prefsPath,
				IntervalMS: intervalMS,
				NoTray:     noTray,
			})
		},
	}

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default ~/.config/relaypulse/config.toml)")
	root.PersistentFlags().StringVar(&e.prefsPath, "prefs", "", "preferences file (default ~/.config/relaypulse/prefs.toml)")
	root.Flags().BoolVar(&noTray, "no-tray", false, "run the window without a tray icon")
	root.Flags().Uint64Var(&intervalMS, "interval", 0, "poll interval in milliseconds for this run")

	// Subcommands (alphabetical)
	root.AddCommand(newAutostartCmd())
	root.AddCommand(newFetchCmd(e))
	root.AddCommand(newIntervalCmd(e))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
