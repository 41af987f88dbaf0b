// Package cmd wires the command line interface.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/team6/drone/cmd/realtime"
	"github.com/team6/drone/cmd/snapshot"
	"github.com/team6/drone/cmd/version"
	"github.com/team6/drone/internal/buildinfo"
	"github.com/team6/drone/internal/conf"
	"github.com/team6/drone/internal/logging"
	"github.com/team6/drone/internal/telemetry"
)

// RootCommand creates and returns the root command. settings is filled in
// before any subcommand other than version runs.
func RootCommand(settings *conf.Settings, info *buildinfo.Context) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "drone",
		Short:        "Onboard drone perception",
		SilenceUsage: true,
	}

	if err := setupFlags(rootCmd, &configPath); err != nil {
		panic(err)
	}

	realtimeCmd := realtime.Command(settings, info)
	snapshotCmd := snapshot.Command(settings)
	versionCmd := version.Command(info)

	rootCmd.AddCommand(realtimeCmd, snapshotCmd, versionCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return initialize(settings, info, configPath)
	}

	return rootCmd
}

// initialize loads the configuration and sets up logging and telemetry.
func initialize(settings *conf.Settings, info *buildinfo.Context, configPath string) error {
	if configPath != "" {
		conf.SetConfigFile(configPath)
	}

	loaded, err := conf.Load()
	if err != nil {
		return err
	}
	*settings = *loaded
	settings.Version = info.GetVersion()
	settings.BuildDate = info.GetBuildDate()

	logging.Configure(logging.RotationSettings{
		Rotation: logging.RotationType(settings.Main.Log.Rotation),
		MaxSize:  settings.Main.Log.MaxSize,
	})
	if settings.Debug {
		logging.SetLevel(slog.LevelDebug)
	}

	return telemetry.InitSentry(settings, info)
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, configPath *string) error {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(configPath, "config", "", "Path to config file (default searches ./, ~/.config/drone, /etc/drone)")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	return nil
}
