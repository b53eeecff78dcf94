package exprtraits

type Predicate func(t Type) bool

func IsDenseVector(t Type) bool  { return t.TypeID == TypeIDDenseVector }
func IsSparseVector(t Type) bool { return t.TypeID == TypeIDSparseVector }
func IsVector(t Type) bool       { return IsDenseVector(t) || IsSparseVector(t) }
func IsColumnVector(t Type) bool { return IsVector(t) && t.TransposeFlag == ColumnVector }
func IsRowVector(t Type) bool    { return IsVector(t) && t.TransposeFlag == RowVector }
func IsConst(t Type) bool        { return t.Qualifiers&QualifierConst != 0 }
func IsVolatile(t Type) bool     { return t.Qualifiers&QualifierVolatile != 0 }
func IsReference(t Type) bool    { return t.Qualifiers&QualifierReference != 0 }

func IsQualified(t Type) bool {
	return IsConst(t) || IsVolatile(t) || IsReference(t)
}

// And holds when every predicate holds, evaluating them left to right and stopping at the first failure.
func And(predicates ...Predicate) Predicate {
	return func(t Type) bool {
		for _, predicate := range predicates {
			if !predicate(t) {
				return false
			}
		}
		return true
	}
}

func Or(predicates ...Predicate) Predicate {
	return func(t Type) bool {
		for _, predicate := range predicates {
			if predicate(t) {
				return true
			}
		}
		return false
	}
}

func Not(predicate Predicate) Predicate {
	return func(t Type) bool {
		return !predicate(t)
	}
}

// Condition decides whether an unqualified operand pair is legal for a rule.
type Condition func(left, right Type) bool

// Operands builds a condition out of one predicate per operand.
// The right predicate is not evaluated if the left one fails.
func Operands(left, right Predicate) Condition {
	return func(l, r Type) bool {
		return left(l) && right(r)
	}
}
