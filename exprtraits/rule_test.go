package exprtraits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var denseSparseCross = Rule{
	Name:      "DVecSVecCrossExprTrait",
	Operation: OperationCross,
	Condition: Operands(
		And(IsDenseVector, IsColumnVector),
		And(IsSparseVector, IsColumnVector),
	),
	Expression:    "DVecSVecCrossExpr",
	TransposeFlag: ColumnVector,
}

var denseDenseAdd = Rule{
	Name:      "DVecDVecAddExprTrait",
	Operation: OperationAdd,
	Condition: Operands(
		And(IsDenseVector, IsColumnVector),
		And(IsDenseVector, IsColumnVector),
	),
	Expression:    "DVecDVecAddExpr",
	TransposeFlag: ColumnVector,
}

var (
	denseColumn  = DenseVector("DynamicVector", "double", ColumnVector)
	denseRow     = DenseVector("DynamicVector", "double", RowVector)
	sparseColumn = SparseVector("CompressedVector", "double", ColumnVector)
	sparseRow    = SparseVector("CompressedVector", "double", RowVector)
)

// allOperands returns every storage, orientation and qualifier combination.
func allOperands() []Type {
	var out []Type
	for _, base := range []Type{denseColumn, denseRow, sparseColumn, sparseRow} {
		for q := Qualifier(0); q <= QualifierConst|QualifierVolatile|QualifierReference; q++ {
			out = append(out, base.WithQualifiers(q))
		}
	}
	return out
}

func TestRule_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		left, right Type
		want        Result
	}{
		{
			name:  "dense column x sparse column",
			left:  denseColumn,
			right: sparseColumn,
			want: Expression{
				Name:          "DVecSVecCrossExpr",
				Operation:     OperationCross,
				Left:          denseColumn,
				Right:         sparseColumn,
				TransposeFlag: ColumnVector,
			},
		},
		{
			name:  "sparse column x sparse column",
			left:  sparseColumn,
			right: sparseColumn,
			want:  Invalid,
		},
		{
			name:  "dense row x sparse column",
			left:  denseRow,
			right: sparseColumn,
			want:  Invalid,
		},
		{
			name:  "dense column x dense column",
			left:  denseColumn,
			right: denseColumn,
			want:  Invalid,
		},
		{
			name:  "dense column x sparse row",
			left:  denseColumn,
			right: sparseRow,
			want:  Invalid,
		},
		{
			name:  "swapped operands",
			left:  sparseColumn,
			right: denseColumn,
			want:  Invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, denseSparseCross.Resolve(tt.left, tt.right))
		})
	}
}

func TestRule_ResolveQualified(t *testing.T) {
	unqualified := denseSparseCross.Resolve(denseColumn, sparseColumn)

	tests := []struct {
		left, right Type
	}{
		{left: denseColumn.Const(), right: sparseColumn},
		{left: denseColumn, right: sparseColumn.Volatile()},
		{left: denseColumn.Const().Reference(), right: sparseColumn.Volatile()},
		{left: denseColumn.Const().Volatile().Reference(), right: sparseColumn.Const().Volatile().Reference()},
		{left: denseColumn.Reference(), right: sparseColumn.Reference()},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s x %s", tt.left, tt.right), func(t *testing.T) {
			got := denseSparseCross.Resolve(tt.left, tt.right)
			assert.Equal(t, unqualified, got)

			expr, ok := AsExpression(got)
			assert.True(t, ok)
			assert.False(t, IsQualified(expr.Left))
			assert.False(t, IsQualified(expr.Right))
		})
	}
}

func TestRule_Totality(t *testing.T) {
	operands := allOperands()
	assert.Len(t, operands, 32)

	for _, left := range operands {
		for _, right := range operands {
			got := denseSparseCross.Resolve(left, right)
			expr, isExpression := AsExpression(got)
			assert.NotEqual(t, isExpression, IsInvalid(got), "%s x %s", left, right)

			// The qualified pair always resolves like the decayed one.
			assert.Equal(t, denseSparseCross.Resolve(left.Decay(), right.Decay()), got, "%s x %s", left, right)

			legal := IsDenseVector(left) && IsColumnVector(left) && IsSparseVector(right) && IsColumnVector(right)
			assert.Equal(t, legal, isExpression, "%s x %s", left, right)
			if isExpression {
				assert.Equal(t, left.Decay(), expr.Left)
				assert.Equal(t, right.Decay(), expr.Right)
				assert.Equal(t, ColumnVector, expr.TransposeFlag)
			}
		}
	}
}

func TestRule_TraceDepth(t *testing.T) {
	for _, left := range allOperands() {
		for _, right := range allOperands() {
			trace := denseSparseCross.Trace(left, right)
			if IsQualified(left) || IsQualified(right) {
				assert.Equal(t, 1, trace.Depth(), "%s x %s", left, right)
			} else {
				assert.Equal(t, 0, trace.Depth(), "%s x %s", left, right)
			}
			last := trace.Steps[len(trace.Steps)-1]
			assert.False(t, IsQualified(last.Left))
			assert.False(t, IsQualified(last.Right))
			assert.Equal(t, "DVecSVecCrossExprTrait", trace.Rule)
		}
	}
}

func TestInvalidIsShared(t *testing.T) {
	fromCross := denseSparseCross.Resolve(sparseColumn, sparseColumn)
	fromAdd := denseDenseAdd.Resolve(sparseRow.Const(), denseColumn)

	assert.Same(t, Invalid, fromCross)
	assert.Same(t, fromCross, fromAdd)
	assert.True(t, IsInvalid(fromCross))
	assert.True(t, fromCross == fromAdd)

	_, ok := AsExpression(fromAdd)
	assert.False(t, ok)
	assert.Equal(t, "INVALID_TYPE", fromAdd.String())
}

func TestRule_NilCondition(t *testing.T) {
	rule := Rule{Name: "empty"}
	assert.True(t, IsInvalid(rule.Resolve(denseColumn, sparseColumn)))
}

func TestResolveType(t *testing.T) {
	assert.Equal(t,
		denseSparseCross.Resolve(denseColumn.Const(), sparseColumn),
		ResolveType(denseSparseCross, denseColumn.Const(), sparseColumn),
	)
}

func TestConditionShortCircuits(t *testing.T) {
	rightEvaluated := false
	condition := Operands(
		IsSparseVector,
		func(t Type) bool {
			rightEvaluated = true
			return true
		},
	)
	assert.False(t, condition(denseColumn, sparseColumn))
	assert.False(t, rightEvaluated)

	evaluated := 0
	counting := func(result bool) Predicate {
		return func(t Type) bool {
			evaluated++
			return result
		}
	}
	assert.False(t, And(counting(true), counting(false), counting(true))(denseColumn))
	assert.Equal(t, 2, evaluated)
}

func TestExpression_String(t *testing.T) {
	expr := denseSparseCross.Resolve(denseColumn, sparseColumn)
	assert.Equal(t,
		"DVecSVecCrossExpr<DynamicVector<double,columnVector>, CompressedVector<double,columnVector>, false>",
		expr.String(),
	)
}
