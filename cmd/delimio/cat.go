package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat PATH...",
	Short: "Decompress files or object URLs to stdout",
	Long: `Write the decompressed content of each source to stdout, in order.

Sources ending in .gz/.gzip or .zst/.zstd are decompressed; anything
else is copied through unchanged.

Examples:
  delimio cat samples.tsv.gz
  delimio cat gs://my-bucket/exports/part1.csv.zst s3://my-bucket/part2.csv.zst`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	fio, cfg, err := newIO()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for _, path := range args {
		r, err := openSource(ctx, fio, cfg, path)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, r)
		if cerr := r.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return nil
}
