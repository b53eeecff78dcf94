package rules

import (
	"fmt"

	. "github.com/cube2222/exprtraits/exprtraits"
)

var AddOverloads = elementwiseOverloads(OperationAdd, "Add")
var SubOverloads = elementwiseOverloads(OperationSub, "Sub")
var MultOverloads = elementwiseOverloads(OperationMult, "Mult")

type storage struct {
	prefix    string
	predicate Predicate
}

var storages = []storage{
	{prefix: "DVec", predicate: IsDenseVector},
	{prefix: "SVec", predicate: IsSparseVector},
}

// elementwiseOverloads creates the rules for an operation that needs both operands to share an orientation.
// The expression keeps that orientation.
func elementwiseOverloads(op Operation, opName string) []Rule {
	var out []Rule
	for _, tf := range []TransposeFlag{ColumnVector, RowVector} {
		orientation := Predicate(IsColumnVector)
		transposePrefix := ""
		if tf == RowVector {
			orientation = IsRowVector
			transposePrefix = "T"
		}
		for _, left := range storages {
			for _, right := range storages {
				out = append(out, Rule{
					Name:      fmt.Sprintf("%s%s%s%s%sExprTrait", transposePrefix, left.prefix, transposePrefix, right.prefix, opName),
					Operation: op,
					Condition: Operands(
						And(left.predicate, orientation),
						And(right.predicate, orientation),
					),
					Expression:    fmt.Sprintf("%s%s%sExpr", left.prefix, right.prefix, opName),
					TransposeFlag: tf,
				})
			}
		}
	}
	return out
}
