package cmd

import (
	"github.com/bnema/wlidle/internal/bridge"
	"github.com/bnema/wlidle/internal/config"
	"github.com/bnema/wlidle/internal/emitter"
	"github.com/bnema/wlidle/internal/logger"
	"github.com/bnema/wlidle/internal/wayland"
	"github.com/spf13/cobra"
)

var (
	v = config.New()

	// dial opens the compositor connection; tests replace it
	dial = wayland.Dialer

	rootCmd = &cobra.Command{
		Use:   "wayland-idle-helper [timeout_ms]",
		Short: "Report Wayland idle and resume events on stdout",
		Long: `wayland-idle-helper subscribes to the compositor's ext_idle_notifier_v1
for the first seat and prints one line per event:

  READY    discovery and subscription succeeded (printed once, first)
  IDLE     the seat has been inactive for timeout_ms
  RESUMED  activity resumed after an idle period

timeout_ms defaults to 10000. The helper exits with status 1 when the
compositor is unreachable, lacks a required global, or the connection ends.`,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetLevel(v.GetString("log_level"))
		},
		RunE: runBridge,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	cobra.CheckErr(config.RegisterFlags(v, rootCmd.PersistentFlags()))

	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

func runBridge(cmd *cobra.Command, args []string) error {
	run, err := config.Load(v, args)
	if err != nil {
		return err
	}
	logger.Debug("Starting idle bridge", "timeout_ms", run.TimeoutMS, "display", run.Display)

	b := &bridge.Bridge{
		Dial:      dial(run.Display),
		TimeoutMS: run.TimeoutMS,
		Sink:      emitter.New(cmd.OutOrStdout()),
	}
	return b.Run()
}
