package parser

import (
	"github.com/pkg/errors"

	"github.com/cube2222/exprtraits/exprtraits"
)

type BinaryExpression struct {
	Operation   exprtraits.Operation
	Left, Right exprtraits.Type
}

var infixOperators = map[rune]exprtraits.Operation{
	'+': exprtraits.OperationAdd,
	'-': exprtraits.OperationSub,
	'*': exprtraits.OperationMult,
	'%': exprtraits.OperationCross,
}

// ParseExpression parses "<type> <operator> <type>", for example "const DynamicVector<double>& % CompressedVector<double>".
// Operators are +, -, * and % (cross product).
func (p *Parser) ParseExpression(text string) (BinaryExpression, error) {
	depth := 0
	index := -1
	var op exprtraits.Operation
	for i, r := range text {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		default:
			if depth != 0 {
				continue
			}
			if curOp, ok := infixOperators[r]; ok {
				if index != -1 {
					return BinaryExpression{}, errors.Errorf("more than one operator in '%s'", text)
				}
				index = i
				op = curOp
			}
		}
	}
	if index == -1 {
		return BinaryExpression{}, errors.Errorf("no operator in '%s', expected one of: + - * %%", text)
	}

	left, err := p.Parse(text[:index])
	if err != nil {
		return BinaryExpression{}, errors.Wrap(err, "couldn't parse left operand")
	}
	right, err := p.Parse(text[index+1:])
	if err != nil {
		return BinaryExpression{}, errors.Wrap(err, "couldn't parse right operand")
	}

	return BinaryExpression{
		Operation: op,
		Left:      left,
		Right:     right,
	}, nil
}
