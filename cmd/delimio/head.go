package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var headLines int

// maxLineBytes matches the facade's line-length bound, so head handles
// any line the library itself can read.
const maxLineBytes = 64 << 20

var headCmd = &cobra.Command{
	Use:   "head PATH",
	Short: "Print the first lines of a file or object URL",
	Long: `Print the first lines of the decompressed source.

Examples:
  delimio head samples.tsv.gz
  delimio head -n 3 s3://my-bucket/exports/samples.csv.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runHead,
}

func init() {
	headCmd.Flags().IntVarP(&headLines, "lines", "n", 10, "number of lines to print")
	rootCmd.AddCommand(headCmd)
}

func runHead(cmd *cobra.Command, args []string) error {
	fio, cfg, err := newIO()
	if err != nil {
		return err
	}

	r, err := openSource(cmd.Context(), fio, cfg, args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for i := 0; i < headLines && sc.Scan(); i++ {
		fmt.Fprintln(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	return nil
}
