package logs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cube2222/exprtraits/config"
)

var Output *os.File

// InitializeFileLogger sends the standard logger to ~/.exprtraits/logs.txt, so that it doesn't mix with command output.
func InitializeFileLogger() {
	path := filepath.Join(config.ExprtraitsDir, "logs.txt")
	if err := os.MkdirAll(config.ExprtraitsDir, 0755); err != nil {
		log.Fatalf("couldn't create ~/.exprtraits home directory: %s", err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("couldn't create logs file: %s", err)
	}
	Output = f
	log.SetOutput(Output)
}

// CloseLogger closes the logs file opened by InitializeFileLogger, if any.
func CloseLogger() {
	if Output != nil {
		Output.Close()
	}
}
