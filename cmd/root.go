// Package cmd is for command line interactions with the typogenetics application
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gregorybchris/typogenetics/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "typogenetics",
	Short: `Translate strands into enzymes and let the enzymes rewrite strands.
Simulate the growth of a strand pool or search for edits that keep an enzyme's function`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
// An interrupt cancels a running simulation or search between iterations.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "log every rewrite step")
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
}

// settings merges defaults, the environment, the settings file and the running
// command's flags into a Viper of its own, so nothing carries over between commands.
func settings(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)

	path, err := cmd.Flags().GetString("settings")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings flag: %w", err)
	}
	if err := config.ReadSettings(v, path); err != nil {
		return nil, err
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return config.New(v, cmd.Name())
}

// newLogger builds a console logger on stderr, at debug level when asked for.
func newLogger(debug bool) (*zap.Logger, error) {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.EncoderConfig.TimeKey = ""
	conf.EncoderConfig.CallerKey = ""
	conf.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	conf.Sampling = nil
	if debug {
		conf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return conf.Build()
}

// setup reads the command's settings and builds its logger.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	conf, err := settings(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(conf.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return conf, logger, nil
}
