package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a Datastream file and print it",
	Long: `Parse a Datastream file and print the assembled document as JSON or YAML.

Examples:
  datastream parse herd.dat
  datastream parse herd.dat --format yaml --strict`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		summary, _ := cmd.Flags().GetBool("summary")

		rt, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		doc, err := parseFile(cmd, rt, args[0])
		if err != nil {
			return err
		}

		var out interface{} = doc
		if summary {
			out = doc.Summary()
		}
		return encode(cmd.OutOrStdout(), format, out)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	parseCmd.Flags().Bool("summary", false, "Print only the per-section counts")
}

// encode writes v to w in the named format
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
