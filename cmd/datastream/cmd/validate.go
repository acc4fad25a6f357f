package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/barnettben/Datastream/pkg/datastream"
)

type validation struct {
	animals int
	err     error
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that Datastream files parse",
	Long: `Parse each file and report whether it is a well-formed Datastream file.
Files are checked concurrently. The command fails if any file does not parse.

Examples:
  datastream validate exports/*.dat
  datastream validate herd.dat --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		results := make([]validation, len(args))
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(runtime.NumCPU())
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				doc, err := datastream.ParseFile(ctx, path, parseOptions(rt))
				if err != nil {
					results[i].err = err
					return nil
				}
				results[i].animals = len(doc.Animals)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for i, path := range args {
			if err := results[i].err; err != nil {
				failed++
				fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "OK   %s (%d animals)\n", path, results[i].animals)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
