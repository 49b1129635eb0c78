package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voun8/relaypulse/internal/prefs"
	"github.com/voun8/relaypulse/internal/state"
)

func newIntervalCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Read or change the saved poll interval",
		Long: `Read or change the poll interval saved in the preferences file.
A running instance picks up the new value after its current wait.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the saved poll interval in milliseconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := prefs.Load(e.prefsPath)
			if p.IntervalMS == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d (default)\n", state.DefaultIntervalMS)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\n", p.IntervalMS)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <ms>",
		Short: "Save a new poll interval in milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseInterval(args[0])
			if err != nil {
				return err
			}
			if _, err := prefs.Update(e.prefsPath, func(p *prefs.Prefs) { p.IntervalMS = ms }); err != nil {
				return fmt.Errorf("save prefs: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "interval set to %dms\n", ms)
			return err
		},
	})

	return cmd
}

func parseInterval(arg string) (uint64, error) {
	ms, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", arg, err)
	}
	if ms == 0 {
		return 0, errors.New("interval must be greater than zero")
	}
	return ms, nil
}
