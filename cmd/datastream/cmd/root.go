package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/barnettben/Datastream/pkg/config"
	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/di"
	"github.com/barnettben/Datastream/pkg/logging"
)

var container *di.Container

// SetContainer sets the dependency injection container
func SetContainer(c *di.Container) {
	container = c
}

// session is what PersistentPreRunE prepares for every command
type session struct {
	cfg        *config.Config
	configPath string
	log        *zap.Logger
}

type sessionKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datastream",
	Short: "Datastream - NMR herd file reader",
	Long: `datastream reads NMR Datastream files, the fixed-width herd, animal,
lactation and breed records exported for milk recording, and turns them into
structured documents that can be printed, validated, archived or served over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.Logging.Level)
		if err != nil {
			return err
		}
		rt := &session{cfg: cfg, configPath: configPath, log: log}
		cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, rt))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt, ok := cmd.Context().Value(sessionKey{}).(*session); ok {
			_ = rt.log.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the archive")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("strict", false, "Validate length and checksum of every record")
}

// loadConfig reads the config file named by --config, or the default one
// when it exists, and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	switch {
	case config.ConfigExists(configPath):
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
	case explicit && cmd.Name() != "init":
		return nil, "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("strict") {
		cfg.Parser.Strict, _ = flags.GetBool("strict")
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, configPath, nil
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	rt, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, errors.New("configuration not loaded")
	}
	return rt, nil
}

// openArchive opens the configured archive through the container
func openArchive(rt *session) (di.Archive, error) {
	if container == nil {
		return nil, errors.New("dependency container not initialized")
	}
	archive, err := container.OpenArchive(rt.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return archive, nil
}

func parseOptions(rt *session) datastream.Options {
	return datastream.Options{Strict: rt.cfg.Parser.Strict, Logger: rt.log}
}

func parseFile(cmd *cobra.Command, rt *session, path string) (*datastream.Document, error) {
	return datastream.ParseFile(cmd.Context(), path, parseOptions(rt))
}
