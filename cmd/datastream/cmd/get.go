package cmd

import (
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored document",
	Long: `Print a document from the archive.

Examples:
  datastream get 2Fh9Lrj4nbQ1DzGGYnXtRT9jv2d
  datastream get 2Fh9Lrj4nbQ1DzGGYnXtRT9jv2d --summary --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		summary, _ := cmd.Flags().GetBool("summary")

		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		archive, err := openArchive(rt)
		if err != nil {
			return err
		}
		defer archive.Close()

		if summary {
			entry, err := archive.Entry(args[0])
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, entry)
		}

		doc, err := archive.Get(args[0])
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), format, doc)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	getCmd.Flags().Bool("summary", false, "Print the archive entry instead of the whole document")
}
