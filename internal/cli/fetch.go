package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voun8/relaypulse/internal/config"
	"github.com/voun8/relaypulse/internal/relaypulse"
)

func newFetchCmd(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the status report once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			cfg, err := config.Load(e.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			report, err := e.newFacade(cfg).FetchStatus(cmd.Context())
			if err != nil {
				return err
			}

			out, err := formatReport(report, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func formatReport(report relaypulse.Report, format string) (string, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(report.Plain())
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return report.Pretty(), nil
}
