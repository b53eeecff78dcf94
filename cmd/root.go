package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cube2222/exprtraits/logs"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exprtraits",
	Short: "Resolve the expression types of vector operations.",
	Long: `exprtraits decides which expression type a vector operation results in,
given the categories of its operands (dense or sparse storage, row or column orientation,
const, volatile and reference qualifiers). Illegal combinations resolve to INVALID_TYPE.`,
	Example: `exprtraits resolve cross "const DynamicVector<double>&" "CompressedVector<double>"
exprtraits matrix cross
exprtraits rules`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logToStderr {
			return
		}
		logs.InitializeFileLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logs.CloseLogger()
	},
}

func Execute(ctx context.Context) {
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

var configPath string
var outputFormat string
var logToStderr bool

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file. Defaults to ~/.exprtraits/config.yml.")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json, yaml or csv. Overrides the configuration.")
	rootCmd.PersistentFlags().BoolVar(&logToStderr, "log-stderr", false, "Log to stderr instead of ~/.exprtraits/logs.txt.")
}
