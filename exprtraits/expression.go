package exprtraits

import (
	"fmt"

	"github.com/pkg/errors"
)

type Operation int

const (
	OperationAdd Operation = iota
	OperationSub
	OperationMult
	OperationCross
)

var operationNames = map[Operation]string{
	OperationAdd:   "add",
	OperationSub:   "sub",
	OperationMult:  "mult",
	OperationCross: "cross",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

var ErrUnknownOperation = errors.New("unknown operation")

func ParseOperation(name string) (Operation, error) {
	for op, opName := range operationNames {
		if opName == name {
			return op, nil
		}
	}
	switch name {
	case "+":
		return OperationAdd, nil
	case "-":
		return OperationSub, nil
	case "*":
		return OperationMult, nil
	case "%":
		return OperationCross, nil
	}
	return 0, errors.Wrapf(ErrUnknownOperation, "'%s'", name)
}

// Result is either an Expression or Invalid.
type Result interface {
	fmt.Stringer
	isResult()
}

// Expression describes an unevaluated expression over two decayed operands.
type Expression struct {
	Name          string
	Operation     Operation
	Left          Type
	Right         Type
	TransposeFlag TransposeFlag
}

func (Expression) isResult() {}

func (e Expression) String() string {
	return fmt.Sprintf("%s<%s, %s, %t>", e.Name, e.Left, e.Right, bool(e.TransposeFlag))
}

type InvalidType struct{}

func (*InvalidType) isResult() {}

func (*InvalidType) String() string {
	return "INVALID_TYPE"
}

// Invalid is the one marker every rule returns for an illegal operand combination.
var Invalid = &InvalidType{}

func IsInvalid(r Result) bool {
	return r == Result(Invalid)
}

func AsExpression(r Result) (Expression, bool) {
	e, ok := r.(Expression)
	return e, ok
}
