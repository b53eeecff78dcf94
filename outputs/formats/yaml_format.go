package formats

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cube2222/exprtraits/exprtraits"
)

type yamlRecord struct {
	Operation  string          `yaml:"operation"`
	Left       string          `yaml:"left"`
	Right      string          `yaml:"right"`
	Rule       string          `yaml:"rule,omitempty"`
	Valid      bool            `yaml:"valid"`
	Expression *yamlExpression `yaml:"expression,omitempty"`
}

type yamlExpression struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Transpose bool   `yaml:"transpose"`
}

// YAMLFormatter buffers all records and writes them as one document on Close.
type YAMLFormatter struct {
	w       io.Writer
	records []yamlRecord
}

func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{
		w: w,
	}
}

func (t *YAMLFormatter) Write(record Record) error {
	out := yamlRecord{
		Operation: record.Operation.String(),
		Left:      record.Left.String(),
		Right:     record.Right.String(),
		Rule:      record.Rule,
	}
	if expr, ok := exprtraits.AsExpression(record.Result); ok {
		out.Valid = true
		out.Expression = &yamlExpression{
			Name:      expr.Name,
			Type:      expr.String(),
			Transpose: bool(expr.TransposeFlag),
		}
	}
	t.records = append(t.records, out)
	return nil
}

func (t *YAMLFormatter) Close() error {
	enc := yaml.NewEncoder(t.w)
	enc.SetIndent(2)
	if err := enc.Encode(t.records); err != nil {
		return errors.Wrap(err, "couldn't encode yaml")
	}
	return enc.Close()
}
