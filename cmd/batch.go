package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve newline-delimited JSON requests from a file, or stdin when the file is -.",
	Long: `Resolve newline-delimited JSON requests from a file, or stdin when the file is -.
Each line is either {"operation": "cross", "left": "...", "right": "..."} or {"expression": "<left> % <right>"}.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.Close()

		var input io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("couldn't open file: %w", err)
			}
			defer f.Close()
			input = f
		}

		requests, err := env.parser.ParseBatch(input)
		if err != nil {
			return fmt.Errorf("couldn't parse requests: %w", err)
		}
		log.Printf("batch: resolving %d requests", len(requests))

		formatter, err := env.formatter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		for i := range requests {
			record, err := env.record(requests[i])
			if err != nil {
				return fmt.Errorf("couldn't resolve request %d: %w", i, err)
			}
			if err := formatter.Write(record); err != nil {
				return fmt.Errorf("couldn't write result: %w", err)
			}
		}
		return formatter.Close()
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
