package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored document",
	Long: `Delete a document from the archive.

Example:
  datastream delete 2Fh9Lrj4nbQ1DzGGYnXtRT9jv2d`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		archive, err := openArchive(rt)
		if err != nil {
			return err
		}
		defer archive.Close()

		if err := archive.Delete(args[0]); err != nil {
			return err
		}
		rt.log.Info("Deleted datastream", zap.String("id", args[0]))
		cmd.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
