package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/cube2222/exprtraits/outputs/formats"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Resolve expressions interactively.",
	Long: `Resolve expressions like "const DynamicVector<double>& % CompressedVector<double>" interactively.
Operators are + (add), - (sub), * (mult) and % (cross). Type exit to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		var suggestions []prompt.Suggest
		for _, class := range env.parser.Classes() {
			suggestions = append(suggestions, prompt.Suggest{Text: class + "<double>"})
		}
		suggestions = append(suggestions,
			prompt.Suggest{Text: "const"},
			prompt.Suggest{Text: "volatile"},
			prompt.Suggest{Text: "exit"},
		)
		sort.Slice(suggestions, func(i, j int) bool {
			return suggestions[i].Text < suggestions[j].Text
		})
		completer := func(d prompt.Document) []prompt.Suggest {
			if d.GetWordBeforeCursor() == "" {
				return nil
			}
			return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
		}

		out := cmd.OutOrStdout()
		executor := func(line string) {
			line = strings.TrimSpace(line)
			switch line {
			case "":
				return
			case "exit", "quit":
				env.Close()
				os.Exit(0)
			}

			expr, err := env.parser.ParseExpression(line)
			if err != nil {
				fmt.Fprintln(out, err)
				return
			}
			record, err := env.record(expr)
			if err != nil {
				fmt.Fprintln(out, err)
				return
			}
			formatter := formats.NewTableFormatter(out)
			if err := formatter.Write(record); err != nil {
				fmt.Fprintln(out, err)
				return
			}
			if err := formatter.Close(); err != nil {
				fmt.Fprintln(out, err)
			}
		}

		fmt.Fprintln(out, "<left> {+,-,*,%} <right>, exit")
		prompt.New(executor, completer, prompt.OptionPrefix("exprtraits> ")).Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
