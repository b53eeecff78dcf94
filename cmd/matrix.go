package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cube2222/exprtraits/exprtraits"
	"github.com/cube2222/exprtraits/outputs/formats"
)

var withQualifiers bool
var checkAmbiguities bool

var matrixCmd = &cobra.Command{
	Use:   "matrix <operation> [types...]",
	Short: "Resolve an operation for every pair of the given operand types.",
	Long: `Resolve an operation for every ordered pair of the given operand types and print the grid.
Without types, a dense and a sparse vector in both orientations are used.`,
	Example: `exprtraits matrix cross
exprtraits matrix add "StaticVector<double,3UL>" "CompressedVector<double>" --qualifiers`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		op, err := exprtraits.ParseOperation(args[0])
		if err != nil {
			return err
		}

		var types []exprtraits.Type
		for _, arg := range args[1:] {
			t, err := env.parser.Parse(arg)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
		if len(types) == 0 {
			types = defaultMatrixTypes()
		}
		if withQualifiers {
			types = qualifiedVariants(types)
		}

		results, err := env.engine.Matrix(op, types)
		if err != nil {
			return fmt.Errorf("couldn't resolve matrix: %w", err)
		}
		formats.WriteMatrix(cmd.OutOrStdout(), types, results)

		if checkAmbiguities {
			ambiguities := env.engine.Ambiguities(types)
			for _, ambiguity := range ambiguities {
				fmt.Fprintf(cmd.ErrOrStderr(), "ambiguous %s: %s x %s matched by %v\n", ambiguity.Operation, ambiguity.Left, ambiguity.Right, ambiguity.Rules)
			}
			if len(ambiguities) > 0 {
				return fmt.Errorf("found %d ambiguous operand combinations", len(ambiguities))
			}
		}
		return nil
	},
}

func defaultMatrixTypes() []exprtraits.Type {
	return []exprtraits.Type{
		exprtraits.DenseVector("DynamicVector", "double", exprtraits.ColumnVector),
		exprtraits.DenseVector("DynamicVector", "double", exprtraits.RowVector),
		exprtraits.SparseVector("CompressedVector", "double", exprtraits.ColumnVector),
		exprtraits.SparseVector("CompressedVector", "double", exprtraits.RowVector),
	}
}

// qualifiedVariants returns every type in every combination of qualifiers.
func qualifiedVariants(types []exprtraits.Type) []exprtraits.Type {
	all := exprtraits.QualifierConst | exprtraits.QualifierVolatile | exprtraits.QualifierReference
	var out []exprtraits.Type
	for _, t := range types {
		for q := exprtraits.Qualifier(0); q <= all; q++ {
			out = append(out, t.Decay().WithQualifiers(q))
		}
	}
	return out
}

func init() {
	matrixCmd.Flags().BoolVar(&withQualifiers, "qualifiers", false, "Also use every const, volatile and reference variant of the types.")
	matrixCmd.Flags().BoolVar(&checkAmbiguities, "check", false, "Fail if any pair is accepted by more than one rule.")
	rootCmd.AddCommand(matrixCmd)
}
