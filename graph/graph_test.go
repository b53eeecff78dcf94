package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cube2222/exprtraits/exprtraits"
)

func TestFromTrace(t *testing.T) {
	rule := exprtraits.Rule{
		Name:      "DVecSVecCrossExprTrait",
		Operation: exprtraits.OperationCross,
		Condition: exprtraits.Operands(
			exprtraits.And(exprtraits.IsDenseVector, exprtraits.IsColumnVector),
			exprtraits.And(exprtraits.IsSparseVector, exprtraits.IsColumnVector),
		),
		Expression: "DVecSVecCrossExpr",
	}
	dense := exprtraits.DenseVector("DynamicVector", "double", exprtraits.ColumnVector)
	sparse := exprtraits.SparseVector("CompressedVector", "double", exprtraits.ColumnVector)

	root := FromTrace(exprtraits.OperationCross, rule.Trace(dense.Const().Reference(), sparse))

	var names []string
	var edges []string
	for node := root; node != nil; node = node.Next {
		names = append(names, node.Name)
		if node.Next != nil {
			edges = append(edges, node.Edge)
		}
	}
	assert.Equal(t, []string{"resolve cross", "step 0", "step 1", "result"}, names)
	assert.Equal(t, []string{"operands", "decay", "classify"}, edges)
	assert.Equal(t, Field{Name: "expression", Value: "DVecSVecCrossExpr"}, root.Next.Next.Next.Fields[0])

	g, err := Show(root)
	require.NoError(t, err)
	out := g.String()
	assert.Contains(t, out, `DynamicVector\<double,columnVector\>`)
	assert.Contains(t, out, "rankdir=LR")
}

func TestFromTraceInvalid(t *testing.T) {
	rule := exprtraits.Rule{
		Name:       "never",
		Condition:  func(left, right exprtraits.Type) bool { return false },
		Expression: "NeverExpr",
	}
	dense := exprtraits.DenseVector("DynamicVector", "double", exprtraits.ColumnVector)

	root := FromTrace(exprtraits.OperationAdd, rule.Trace(dense, dense))
	result := root.Next.Next
	assert.Equal(t, "result", result.Name)
	assert.Equal(t, []Field{{Name: "type", Value: "INVALID_TYPE"}}, result.Fields)

	_, err := Show(root)
	assert.NoError(t, err)
}
