package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/cube2222/exprtraits/graph"
)

var render bool

var graphCmd = &cobra.Command{
	Use:   "graph <operation> <left> <right>",
	Short: "Print the resolution steps of an operation as a Graphviz graph.",
	Long: `Print the resolution steps of an operation in the DOT language.
With --render, the graph is rendered to a PNG using the dot binary and opened.`,
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
		trace, err := env.engine.Trace(expr.Operation, expr.Left, expr.Right)
		if err != nil {
			return fmt.Errorf("couldn't trace resolution: %w", err)
		}
		g, err := graph.Show(graph.FromTrace(expr.Operation, trace))
		if err != nil {
			return fmt.Errorf("couldn't build graph: %w", err)
		}

		if !render {
			fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return nil
		}

		file, err := os.CreateTemp(os.TempDir(), "exprtraits-graph-*.png")
		if err != nil {
			return fmt.Errorf("couldn't create temporary file: %w", err)
		}
		dot := exec.Command("dot", "-Tpng")
		dot.Stdin = strings.NewReader(g.String())
		dot.Stdout = file
		dot.Stderr = os.Stderr
		if err := dot.Run(); err != nil {
			file.Close()
			return fmt.Errorf("couldn't render graph: %w", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("couldn't close temporary file: %w", err)
		}
		if err := open.Start(file.Name()); err != nil {
			return fmt.Errorf("couldn't open graph: %w", err)
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().BoolVar(&render, "render", false, "Render the graph to a PNG and open it.")
	rootCmd.AddCommand(graphCmd)
}
