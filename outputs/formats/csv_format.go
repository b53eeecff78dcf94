package formats

import (
	"encoding/csv"
	"io"
)

type CSVFormatter struct {
	writer        *csv.Writer
	headerWritten bool
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	writer := csv.NewWriter(w)

	return &CSVFormatter{
		writer: writer,
	}
}

func (t *CSVFormatter) Write(record Record) error {
	if !t.headerWritten {
		if err := t.writer.Write(header); err != nil {
			return err
		}
		t.headerWritten = true
	}
	return t.writer.Write(row(record))
}

func (t *CSVFormatter) Close() error {
	t.writer.Flush()
	return t.writer.Error()
}
