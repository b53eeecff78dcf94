package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"

	"github.com/cube2222/exprtraits/exprtraits"
)

// ParseBatch reads newline-delimited JSON requests. Each line is either
// {"operation": "cross", "left": "...", "right": "..."} or {"expression": "... % ..."}.
// Empty lines are skipped.
func (p *Parser) ParseBatch(r io.Reader) ([]BinaryExpression, error) {
	sc := bufio.NewScanner(bufio.NewReaderSize(r, 4096*1024))

	var parser fastjson.Parser
	var out []BinaryExpression
	line := 0
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		v, err := parser.ParseBytes(sc.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse json on line %d", line)
		}
		if v.Type() != fastjson.TypeObject {
			return nil, errors.Errorf("expected JSON object on line %d, got '%s'", line, sc.Text())
		}

		expr, err := p.parseRequest(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid request on line %d", line)
		}
		out = append(out, expr)
	}
	if sc.Err() != nil {
		return nil, errors.Wrap(sc.Err(), "couldn't scan lines")
	}

	return out, nil
}

func (p *Parser) parseRequest(v *fastjson.Value) (BinaryExpression, error) {
	if v.Exists("expression") {
		return p.ParseExpression(string(v.GetStringBytes("expression")))
	}

	for _, field := range []string{"operation", "left", "right"} {
		if fv := v.Get(field); fv == nil || fv.Type() != fastjson.TypeString {
			return BinaryExpression{}, errors.Errorf("field '%s' must be a string", field)
		}
	}

	op, err := exprtraits.ParseOperation(string(v.GetStringBytes("operation")))
	if err != nil {
		return BinaryExpression{}, err
	}
	left, err := p.Parse(string(v.GetStringBytes("left")))
	if err != nil {
		return BinaryExpression{}, errors.Wrap(err, "couldn't parse left operand")
	}
	right, err := p.Parse(string(v.GetStringBytes("right")))
	if err != nil {
		return BinaryExpression{}, errors.Wrap(err, "couldn't parse right operand")
	}

	return BinaryExpression{
		Operation: op,
		Left:      left,
		Right:     right,
	}, nil
}
