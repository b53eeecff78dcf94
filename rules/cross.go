package rules

import (
	. "github.com/cube2222/exprtraits/exprtraits"
)

// Cross products are only defined for column vectors and always produce a non-transpose expression.

var DVecSVecCross = Rule{
	Name:      "DVecSVecCrossExprTrait",
	Operation: OperationCross,
	Condition: Operands(
		And(IsDenseVector, IsColumnVector),
		And(IsSparseVector, IsColumnVector),
	),
	Expression:    "DVecSVecCrossExpr",
	TransposeFlag: ColumnVector,
}

var DVecDVecCross = Rule{
	Name:      "DVecDVecCrossExprTrait",
	Operation: OperationCross,
	Condition: Operands(
		And(IsDenseVector, IsColumnVector),
		And(IsDenseVector, IsColumnVector),
	),
	Expression:    "DVecDVecCrossExpr",
	TransposeFlag: ColumnVector,
}

var SVecDVecCross = Rule{
	Name:      "SVecDVecCrossExprTrait",
	Operation: OperationCross,
	Condition: Operands(
		And(IsSparseVector, IsColumnVector),
		And(IsDenseVector, IsColumnVector),
	),
	Expression:    "SVecDVecCrossExpr",
	TransposeFlag: ColumnVector,
}

var SVecSVecCross = Rule{
	Name:      "SVecSVecCrossExprTrait",
	Operation: OperationCross,
	Condition: Operands(
		And(IsSparseVector, IsColumnVector),
		And(IsSparseVector, IsColumnVector),
	),
	Expression:    "SVecSVecCrossExpr",
	TransposeFlag: ColumnVector,
}

var CrossOverloads = []Rule{
	DVecDVecCross,
	DVecSVecCross,
	SVecDVecCross,
	SVecSVecCross,
}
