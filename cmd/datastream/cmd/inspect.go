package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/barnettben/Datastream/pkg/stream"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump every decoded record of a file",
	Long: `Decode a Datastream file record by record, without assembling sections,
and dump each record with its line number. Useful for finding the record that
breaks a file.

Example:
  datastream inspect herd.dat --strict`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		reader, err := stream.NewRecordReader(stream.ReaderConfig{FilePath: args[0], Strict: rt.cfg.Parser.Strict})
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer reader.Close()

		out := cmd.OutOrStdout()
		it := reader.Iterator(cmd.Context())
		defer it.Close()

		count := 0
		for it.Next() {
			rec := it.Record()
			count++
			fmt.Fprintf(out, "--- line %d: %s\n", reader.Line(), rec.RecordHeader().ID)
			dumper.Fdump(out, rec)
		}
		if err := it.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d records\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
