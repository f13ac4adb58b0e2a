package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/govalues/bignum"
	"github.com/spf13/cobra"
)

// operation evaluates an operation on string operands.
type operation struct {
	arity int
	eval  func(ctx bignum.Context, args []string) (any, error)
}

func unary[T any](f func(bignum.Context, any) (T, error)) operation {
	return operation{
		arity: 1,
		eval: func(ctx bignum.Context, args []string) (any, error) {
			z, err := f(ctx, args[0])
			return z, err
		},
	}
}

func binary[T any](f func(bignum.Context, any, any) (T, error)) operation {
	return operation{
		arity: 2,
		eval: func(ctx bignum.Context, args []string) (any, error) {
			z, err := f(ctx, args[0], args[1])
			return z, err
		},
	}
}

var operations = map[string]operation{
	"abs":       unary(bignum.Context.Abs),
	"neg":       unary(bignum.Context.Neg),
	"sign":      unary(bignum.Context.Sign),
	"sqrt":      unary(bignum.Context.Sqrt),
	"add":       binary(bignum.Context.Add),
	"sub":       binary(bignum.Context.Sub),
	"mul":       binary(bignum.Context.Mul),
	"div":       binary(bignum.Context.QuoScaled),
	"rem":       binary(bignum.Context.Rem),
	"cmp":       binary(bignum.Context.Cmp),
	"max":       binary(bignum.Context.Max),
	"min":       binary(bignum.Context.Min),
	"gcd":       binary(bignum.Context.GCD),
	"lcm":       binary(bignum.Context.LCM),
	"pow":       binary(bignum.Context.Pow),
	"root":      binary(bignum.Context.NthRoot),
	"tetration": binary(bignum.Context.Tetration),
	"superroot": binary(bignum.Context.SuperRoot),
}

func operationNames() string {
	return strings.Join(slices.Sorted(maps.Keys(operations)), ", ")
}

func newCalcCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <op> <a> [b]",
		Short: "Evaluate a single operation",
		Long:  "Evaluate a single operation.\nOperations: " + operationNames() + ".",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := calc(opts.ctx, args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
			return nil
		},
	}
	// Negative operands are not flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func calc(ctx bignum.Context, name string, args []string) (any, error) {
	op, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q, want one of %v", name, operationNames())
	}
	if len(args) != op.arity {
		return nil, fmt.Errorf("operation %q takes %v operands, got %v", name, op.arity, len(args))
	}
	return op.eval(ctx, args)
}
