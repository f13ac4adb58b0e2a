package main

import (
	"fmt"
	"strconv"

	"github.com/govalues/bignum"
	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"
)

func newRoundCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "round <value> <precision>",
		Short: "Round a decimal value with every rounding mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bignum.ParseScaled(args[0])
			if err != nil {
				return err
			}
			prec, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing precision: %w", err)
			}
			tab, err := roundTable(s, prec, opts.ctx.Rounding)
			if err != nil {
				return err
			}
			tab.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

// roundTable rounds s with every mode and marks the context mode.
func roundTable(s bignum.Scaled, prec int, current bignum.RoundingMode) (*tabulate.Tabulate, error) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Mode").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MR)
	for _, m := range bignum.RoundingModes() {
		r, err := s.Rescale(prec, m)
		if err != nil {
			return nil, err
		}
		row := tab.Row()
		if m == current {
			row.Column(m.String() + " *").SetFormat(tabulate.FmtBold)
		} else {
			row.Column(m.String())
		}
		row.Column(r.String())
	}
	return tab, nil
}
