package cmd

import (
	"github.com/spf13/cobra"

	"github.com/barnettben/Datastream/pkg/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Import files dropped into an inbox directory",
	Long: `Watch an inbox directory and import every file that appears in it.
Imported files are moved to the processed directory, files that do not parse
to the failed directory. Runs until interrupted.

Examples:
  datastream watch
  datastream watch --inbox /srv/datastream/inbox`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		cfg := rt.cfg.Watch
		if cmd.Flags().Changed("inbox") {
			cfg.Inbox, _ = cmd.Flags().GetString("inbox")
		}

		archive, err := openArchive(rt)
		if err != nil {
			return err
		}
		defer archive.Close()

		inbox := watch.New(watch.Config{
			Inbox:     cfg.Inbox,
			Processed: cfg.ProcessedDir(),
			Failed:    cfg.FailedDir(),
			Strict:    rt.cfg.Parser.Strict,
		}, archive, rt.log)
		if err := inbox.Run(cmd.Context()); err != nil {
			return err
		}

		stats := inbox.Stats()
		cmd.Printf("Imported %d files, %d failed\n", stats.Imported, stats.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("inbox", "./inbox", "Directory to watch")
}
