package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/delimio/delimio/internal/colstats"
)

var (
	describeDelimiter string
	describeNoHeader  bool
)

var describeCmd = &cobra.Command{
	Use:   "describe PATH",
	Short: "Summarize the numeric columns of a delimited file",
	Long: `Compute descriptive statistics (count, mean, standard deviation,
min/median/max, quartiles) for each column whose values all parse as
numbers. Non-numeric columns are skipped.

The source may be a local path or an object URL, decompressed per its
extension.

Examples:
  delimio describe measurements.csv.gz
  delimio describe --delimiter tab --no-header s3://my-bucket/samples.tsv.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeDelimiter, "delimiter", "comma", "field delimiter: comma or tab")
	describeCmd.Flags().BoolVar(&describeNoHeader, "no-header", false, "treat the first row as data, not column names")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	fio, cfg, err := newIO()
	if err != nil {
		return err
	}

	r, err := openSource(cmd.Context(), fio, cfg, args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	delim, err := delimiterRune(describeDelimiter)
	if err != nil {
		return err
	}

	names, columns, err := collectNumericColumns(r, delim, !describeNoHeader)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if len(columns) == 0 {
		fmt.Fprintln(out, "No numeric columns found.")
		return nil
	}

	fmt.Fprintf(out, "%-20s %8s %12s %12s %12s %12s %12s\n",
		"column", "n", "mean", "stddev", "min", "median", "max")
	for i, values := range columns {
		s := colstats.Describe(values)
		fmt.Fprintf(out, "%-20s %8d %12.6g %12.6g %12.6g %12.6g %12.6g\n",
			names[i], s.N, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
	}
	return nil
}

// collectNumericColumns reads every row and keeps the columns whose
// tokens all parse as float64. Returned names and value slices are
// parallel, in column order. Short or long rows only contribute the
// positions they have.
func collectNumericColumns(r io.Reader, delim rune, header bool) ([]string, [][]float64, error) {
	in := csv.NewReader(r)
	in.Comma = delim
	in.FieldsPerRecord = -1
	in.ReuseRecord = true

	var names []string
	var values [][]float64
	var numeric []bool

	if header {
		row, err := in.Read()
		if err == io.EOF {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, err
		}
		names = make([]string, len(row))
		copy(names, row)
	}

	grow := func(n int) {
		for len(values) < n {
			i := len(values)
			values = append(values, nil)
			numeric = append(numeric, true)
			if len(names) <= i {
				names = append(names, fmt.Sprintf("col%d", i+1))
			}
		}
	}
	grow(len(names))

	for {
		row, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		grow(len(row))
		for i, token := range row {
			if !numeric[i] {
				continue
			}
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				numeric[i] = false
				values[i] = nil
				continue
			}
			values[i] = append(values[i], v)
		}
	}

	var outNames []string
	var outValues [][]float64
	for i := range values {
		if numeric[i] && len(values[i]) > 0 {
			outNames = append(outNames, names[i])
			outValues = append(outValues, values[i])
		}
	}
	return outNames, outValues, nil
}
