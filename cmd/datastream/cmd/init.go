package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barnettben/Datastream/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with a generated API key",
	Long: `Create a configuration file with a freshly generated API key for the
REST server. The data directory given with --data-dir is written to the file.

Examples:
  datastream init
  datastream init --config ./datastream.yaml --data-dir /srv/datastream/data
  datastream init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		if config.ConfigExists(rt.configPath) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to replace it.\n", rt.configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(rt.configPath, rt.cfg.DataDir)
		if err != nil {
			return err
		}

		cmd.Printf("Configuration written to %s\n", rt.configPath)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("\nStart the server with:\n  datastream serve --config %s\n", rt.configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Replace an existing configuration")
}
