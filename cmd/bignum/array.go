package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/bigarray"
	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"
)

type arrayOptions struct {
	aggregate string
	queries   []string
	sort      string
}

func newArrayCmd(opts *options) *cobra.Command {
	aopts := &arrayOptions{}
	cmd := &cobra.Command{
		Use:   "array [flags] <values...>",
		Short: "Build an array and answer range queries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArray(cmd, opts, aopts, args)
		},
	}
	f := cmd.Flags()
	f.SetInterspersed(false)
	f.StringVarP(&aopts.aggregate, "aggregate", "a", "max", "aggregate function (max, min, sum, gcd)")
	f.StringArrayVarP(&aopts.queries, "query", "q", nil, "inclusive index range i:j to aggregate, may be repeated")
	f.StringVar(&aopts.sort, "sort", "", "sort the elements before querying (asc, desc)")
	return cmd
}

func runArray(cmd *cobra.Command, opts *options, aopts *arrayOptions, args []string) error {
	combine, err := bigarray.ParseCombine(aopts.aggregate)
	if err != nil {
		return err
	}
	if aopts.aggregate == "sum" {
		combine = bigarray.SumWith(opts.ctx)
	}
	values := make([]bignum.Int, len(args))
	for i, s := range args {
		values[i], err = bignum.Coerce(s)
		if err != nil {
			return fmt.Errorf("element %v: %w", i, err)
		}
	}
	a, err := bigarray.From(values, combine, bigarray.WithLogger(opts.logger))
	if err != nil {
		return err
	}
	switch aopts.sort {
	case "":
	case "asc", "desc":
		if err := a.Sort(aopts.sort == "asc"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown sort order %q, want asc or desc", aopts.sort)
	}

	out := cmd.OutOrStdout()
	elems := tabulate.New(tabulate.UnicodeLight)
	elems.Header("Index").SetAlign(tabulate.MR)
	elems.Header("Value").SetAlign(tabulate.MR)
	for i, v := range a.ToArray() {
		row := elems.Row()
		row.Column(strconv.Itoa(i))
		row.Column(v.String())
	}
	elems.Print(out)

	if len(aopts.queries) == 0 {
		return nil
	}
	answers := tabulate.New(tabulate.UnicodeLight)
	answers.Header("Range").SetAlign(tabulate.ML)
	answers.Header(strings.ToUpper(aopts.aggregate)).SetAlign(tabulate.MR)
	for _, q := range aopts.queries {
		row := answers.Row()
		row.Column(q)
		z, err := queryRange(a, q)
		if err != nil {
			// A bad query does not stop the remaining ones.
			opts.logger.Warn("query failed", "range", q, "error", err)
			row.Column("error: " + bignum.Code(err)).SetFormat(tabulate.FmtItalic)
			continue
		}
		row.Column(z.String())
	}
	answers.Print(out)
	return nil
}

// queryRange answers a query of the form "i:j".
func queryRange(a *bigarray.Array, q string) (bignum.Int, error) {
	lo, hi, ok := strings.Cut(q, ":")
	if !ok {
		return bignum.Int{}, fmt.Errorf("query %q: %w", q, bigarray.ErrRange)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return bignum.Int{}, fmt.Errorf("query %q: %w", q, bigarray.ErrRange)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return bignum.Int{}, fmt.Errorf("query %q: %w", q, bigarray.ErrRange)
	}
	return a.QueryRange(start, end)
}
