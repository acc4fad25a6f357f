package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		archive, err := openArchive(rt)
		if err != nil {
			return err
		}
		defer archive.Close()

		entries, err := archive.List()
		if err != nil {
			return err
		}

		if format != "table" {
			return encode(cmd.OutOrStdout(), format, entries)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTORED\tSOURCE\tHERD\tANIMALS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
				e.ID, e.StoredAt.Local().Format(time.DateTime), e.Source, e.Summary.NMRHerdNumber, e.Summary.Animals)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("format", "f", "table", "Output format: table, json or yaml")
}
