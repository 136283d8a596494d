package cmd

import (
	"fmt"

	"github.com/bnema/wlidle/internal/bridge"
	"github.com/bnema/wlidle/internal/config"
	"github.com/bnema/wlidle/internal/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var probeYAML bool

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "List compositor globals and check idle notification support",
	Long: `Connect to the compositor, list every advertised global and report whether
wl_seat and ext_idle_notifier_v1 are available. Nothing is bound. Exits with
status 1 when either capability is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := config.Load(v, nil)
		if err != nil {
			return err
		}

		report, err := bridge.Probe(dial(run.Display))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if probeYAML {
			data, err := yaml.Marshal(report)
			if err != nil {
				return errors.Wrap(err, "failed to encode report")
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
		} else {
			fmt.Fprint(out, ui.RenderReport(report))
		}

		return report.Missing()
	},
}

func init() {
	probeCmd.Flags().BoolVar(&probeYAML, "yaml", false, "print the report as YAML")
}
