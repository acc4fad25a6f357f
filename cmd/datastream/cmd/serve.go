package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/barnettben/Datastream/pkg/api"
	"github.com/barnettben/Datastream/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the Datastream REST API server. Files are uploaded to
POST /api/v1/datastreams, parsed and kept in the archive under the data directory.
Every /api/v1 route needs the X-API-Key header; /metrics is open for scraping.

When the configured API key is "auto" a key is generated for this run and printed.

Examples:
  datastream serve
  datastream serve --port 9000 --bind 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("port") {
			rt.cfg.Port, _ = flags.GetInt("port")
		}
		if flags.Changed("bind") {
			rt.cfg.Bind, _ = flags.GetString("bind")
		}

		apiKey := rt.cfg.Security.APIKey
		if apiKey == "" || apiKey == "auto" {
			apiKey, err = config.GenerateSecureKey(32)
			if err != nil {
				return err
			}
			cmd.Printf("Generated API key for this run: %s\n", apiKey)
			cmd.Printf("Run 'datastream init' to keep a key in the config file.\n")
		}

		if container == nil {
			return errors.New("dependency container not initialized")
		}

		archive, err := openArchive(rt)
		if err != nil {
			return err
		}
		defer archive.Close()

		serverConfig := api.ServerConfig{
			Port:          rt.cfg.Port,
			Bind:          rt.cfg.Bind,
			APIKey:        apiKey,
			Strict:        rt.cfg.Parser.Strict,
			MaxUploadSize: rt.cfg.Security.MaxUploadSize,
		}
		rt.log.Info("Starting server",
			zap.String("bind", serverConfig.Bind),
			zap.Int("port", serverConfig.Port),
			zap.String("data_dir", rt.cfg.DataDir),
		)

		starter := container.GetServerFactory().CreateServerStarter()
		return starter.StartServer(cmd.Context(), archive, serverConfig, rt.log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
}
