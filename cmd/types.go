package cmd

import (
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cube2222/exprtraits/config"
	"github.com/cube2222/exprtraits/parser"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the known vector classes and their storage.",
	Long:  `List the built-in vector classes and the ones defined in the types section of the configuration file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		classes := env.parser.Classes()
		sort.Strings(classes)

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"class", "storage", "source"})
		table.SetAutoFormatHeaders(false)
		for _, class := range classes {
			typeConfig, err := env.config.GetTypeConfig(class)
			switch {
			case err == nil:
				table.Append([]string{class, strings.ToLower(typeConfig.Storage), "config"})
			case errors.Is(err, config.ErrNotFound):
				table.Append([]string{class, parser.DefaultClasses[class].String(), "builtin"})
			default:
				return err
			}
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
