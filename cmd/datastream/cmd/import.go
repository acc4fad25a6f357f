package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Parse a Datastream file and store it in the archive",
	Long: `Parse a Datastream file and store the document in the archive under the
data directory. The id of the stored document is printed.

Example:
  datastream import herd.dat --data-dir ./data`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		doc, err := parseFile(cmd, rt, args[0])
		if err != nil {
			return err
		}

		archive, err := openArchive(rt)
		if err != nil {
			return err
		}
		defer archive.Close()

		entry, err := archive.Put(filepath.Base(args[0]), doc)
		if err != nil {
			return err
		}

		rt.log.Info("Imported datastream", zap.String("id", entry.ID), zap.String("path", args[0]))
		fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
