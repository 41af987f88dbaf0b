package realtime

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/team6/drone/internal/analysis"
	"github.com/team6/drone/internal/buildinfo"
	"github.com/team6/drone/internal/conf"
)

// Command creates the realtime command.
func Command(settings *conf.Settings, info buildinfo.BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realtime",
		Short: "Run the perception pipeline continuously",
		Long:  "Poll the camera, publish the latest annotated frame and detail record, persist changes and serve the HTTP API until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return analysis.RealtimeAnalysis(ctx, settings, info)
		},
	}

	if err := setupFlags(cmd); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
		os.Exit(1)
	}

	return cmd
}

// setupFlags binds realtime flags to their config keys.
func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("source", "", "Camera source (\"host\" or \"replay\")")
	cmd.Flags().Int("device", 0, "Video device index for the host source")
	cmd.Flags().String("replaypath", "", "Directory of recorded frames for the replay source")
	cmd.Flags().String("calibration", "", "Camera calibration YAML file")
	cmd.Flags().String("model", "", "Path to the detector .tflite model")
	cmd.Flags().String("port", "", "Web server port")
	cmd.Flags().Bool("mqtt", false, "Publish detail records over MQTT")

	bindings := map[string]string{
		"source":      "camera.source",
		"device":      "camera.device",
		"replaypath":  "camera.replaypath",
		"calibration": "camera.calibrationpath",
		"model":       "model.path",
		"port":        "webserver.port",
		"mqtt":        "mqtt.enabled",
	}
	for flag, key := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}
	return nil
}
