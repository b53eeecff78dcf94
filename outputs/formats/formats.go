package formats

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cube2222/exprtraits/exprtraits"
)

// Record is a single resolution, as printed by the formatters.
type Record struct {
	Operation   exprtraits.Operation
	Left, Right exprtraits.Type
	Rule        string
	Result      exprtraits.Result
}

type Formatter interface {
	Write(record Record) error
	Close() error
}

var header = []string{"operation", "left", "right", "rule", "result"}

func row(record Record) []string {
	rule := record.Rule
	if rule == "" {
		rule = "-"
	}
	return []string{
		record.Operation.String(),
		record.Left.String(),
		record.Right.String(),
		rule,
		record.Result.String(),
	}
}

func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table", "":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	}
	return nil, errors.Errorf("invalid output format '%s', must be one of: table, json, yaml, csv", name)
}
