package cmd

import (
	"io"
	"os"

	"github.com/bnema/wlidle/internal/bridge"
	"github.com/bnema/wlidle/internal/config"
	"github.com/bnema/wlidle/internal/logger"
	"github.com/bnema/wlidle/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:                "watch [timeout_ms]",
	Short:              "Show idle state changes in an interactive view",
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := config.Load(v, args)
		if err != nil {
			return err
		}

		// The program owns the terminal
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)

		model := ui.NewWatchModel(run.TimeoutMS)
		p := tea.NewProgram(model,
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)

		b := &bridge.Bridge{
			Dial:      dial(run.Display),
			TimeoutMS: run.TimeoutMS,
			Sink:      ui.ProgramSink{Program: p},
		}
		go func() {
			p.Send(ui.BridgeDoneMsg{Err: b.Run()})
		}()

		if _, err := p.Run(); err != nil {
			return errors.Wrap(err, "watch view failed")
		}
		return model.Err()
	},
}
