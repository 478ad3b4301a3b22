package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/notify"
	"github.com/ramanasai/mindclean/internal/ui"
)

var tuiMode string

// tuiCmd launches the Bubble Tea capture screen.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive capture screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeFlag(tuiMode, defaultMode())
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var opts []ui.Option
		if remindersOn() {
			opts = append(opts, ui.WithStreakToast(notify.Done))
		}
		startReminder(ctx, a.session)
		return ui.Run(ctx, a.session, mode, opts...)
	},
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiMode, "mode", "m", "", "Starting mode: dump|confide")
}
