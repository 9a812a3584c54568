package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delimio/delimio"
)

var sniffCmd = &cobra.Command{
	Use:   "sniff PATH...",
	Short: "Show how each path would be classified",
	Long: `Print the compression classification for each path.

Classification looks at the final extension token only and never reads
content, so it works on paths that do not exist yet.

Examples:
  delimio sniff samples.tsv.gz data.csv notes.txt.zstd`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSniff,
}

func init() {
	rootCmd.AddCommand(sniffCmd)
}

func runSniff(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, path := range args {
		fmt.Fprintf(out, "%s\t%s\n", path, delimio.Classify(path))
	}
	return nil
}
