package rules

import (
	. "github.com/cube2222/exprtraits/exprtraits"
)

func RuleMap() map[Operation]OperationDetails {
	return map[Operation]OperationDetails{
		OperationAdd: {
			Description: "Element-wise addition of two vectors with the same orientation. The expression keeps the orientation of the operands.",
			Rules:       AddOverloads,
		},
		OperationSub: {
			Description: "Element-wise subtraction of two vectors with the same orientation. The expression keeps the orientation of the operands.",
			Rules:       SubOverloads,
		},
		OperationMult: {
			Description: "Element-wise (componentwise) multiplication of two vectors with the same orientation.",
			Rules:       MultOverloads,
		},
		OperationCross: {
			Description: "Cross product of two 3-dimensional column vectors. The resulting expression is always a non-transpose (column) vector.",
			Rules:       CrossOverloads,
		},
	}
}
