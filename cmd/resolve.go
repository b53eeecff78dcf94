package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var verbose bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <operation> <left> <right>",
	Short: "Resolve the expression type of a single operation.",
	Example: `exprtraits resolve cross "DynamicVector<double>" "CompressedVector<double>"
exprtraits resolve add "const DynamicVector<float,rowVector>&" "DynamicVector<float,rowVector>"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		expr, err := env.parseOperation(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		if verbose {
			trace, err := env.engine.Trace(expr.Operation, expr.Left, expr.Right)
			if err != nil {
				return fmt.Errorf("couldn't trace resolution: %w", err)
			}
			spew.Fdump(os.Stderr, trace)
		}

		record, err := env.record(expr)
		if err != nil {
			return fmt.Errorf("couldn't resolve: %w", err)
		}

		formatter, err := env.formatter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := formatter.Write(record); err != nil {
			return fmt.Errorf("couldn't write result: %w", err)
		}
		return formatter.Close()
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump the resolution steps to stderr.")
	rootCmd.AddCommand(resolveCmd)
}
