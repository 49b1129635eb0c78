package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voun8/relaypulse/internal/autostart"
)

func newAutostartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage launching RelayPulse at login",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start RelayPulse when you log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				exe = resolved
			}
			if err := autostart.Enable(exe); err != nil {
				return fmt.Errorf("enable autostart: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop starting RelayPulse at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := autostart.Disable(); err != nil {
				return fmt.Errorf("disable autostart: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether RelayPulse starts at login",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if autostart.IsEnabled() {
				fmt.Fprintln(cmd.OutOrStdout(), "enabled")
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), "disabled")
		},
	})

	return cmd
}
