package snapshot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/team6/drone/internal/analysis"
	"github.com/team6/drone/internal/conf"
	"github.com/team6/drone/pkg/spinner"
)

// Command creates the snapshot command.
func Command(settings *conf.Settings) *cobra.Command {
	opts := analysis.SnapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture one frame and its detail record",
		Long:  "Open the camera, wait for the first frame, then write it as JPEG together with its detail record as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			spinCtx, stopSpin := context.WithCancel(ctx)
			spun := make(chan struct{})
			go func() {
				defer close(spun)
				spinner.NewSpinner(cmd.ErrOrStderr()).Run(spinCtx, " waiting for frame", 100*time.Millisecond)
			}()

			res, err := analysis.Snapshot(ctx, settings, opts)
			stopSpin()
			<-spun
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "image:  %s\nrecord: %s\n", res.ImagePath, res.RecordPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out", "snapshots", "Directory to write the snapshot to")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Maximum time to wait for a frame")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Write the frame without annotations")

	return cmd
}
