package cmd

import (
	"fmt"

	"github.com/kr/text"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cube2222/exprtraits/exprtraits"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [operation]",
	Short: "List the resolution rules of every operation, or of a single one.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		operations := env.engine.Operations()
		if len(args) == 1 {
			op, err := exprtraits.ParseOperation(args[0])
			if err != nil {
				return err
			}
			operations = []exprtraits.Operation{op}
		}

		rules := env.engine.Rules()
		out := cmd.OutOrStdout()
		for _, op := range operations {
			description, err := env.engine.Description(op)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s:\n%s\n", op, text.Indent(text.Wrap(description, 76), "    "))

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"rule", "expression", "transpose"})
			table.SetAutoFormatHeaders(false)
			for _, rule := range rules {
				if rule.Operation != op {
					continue
				}
				table.Append([]string{rule.Name, rule.Expression, fmt.Sprint(bool(rule.TransposeFlag))})
			}
			table.Render()
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
