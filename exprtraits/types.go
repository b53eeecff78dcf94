package exprtraits

import (
	"fmt"
	"math/bits"
	"strings"
)

type TypeID int

const (
	TypeIDDenseVector TypeID = iota
	TypeIDSparseVector
)

func (id TypeID) String() string {
	switch id {
	case TypeIDDenseVector:
		return "dense"
	case TypeIDSparseVector:
		return "sparse"
	}
	panic("impossible, type id switch bug")
}

// TransposeFlag is the orientation of a vector. Column vectors are the non-transpose ones.
type TransposeFlag bool

const (
	ColumnVector TransposeFlag = false
	RowVector    TransposeFlag = true
)

func (tf TransposeFlag) String() string {
	if tf == RowVector {
		return "rowVector"
	}
	return "columnVector"
}

type Qualifier uint8

const (
	QualifierConst Qualifier = 1 << iota
	QualifierVolatile
	QualifierReference

	qualifierCV = QualifierConst | QualifierVolatile
)

func (q Qualifier) Count() int {
	return bits.OnesCount8(uint8(q))
}

// Type describes a single vector operand.
type Type struct {
	TypeID        TypeID
	Name          string
	Element       string
	TransposeFlag TransposeFlag
	Qualifiers    Qualifier
}

func DenseVector(name, element string, tf TransposeFlag) Type {
	return Type{
		TypeID:        TypeIDDenseVector,
		Name:          name,
		Element:       element,
		TransposeFlag: tf,
	}
}

func SparseVector(name, element string, tf TransposeFlag) Type {
	return Type{
		TypeID:        TypeIDSparseVector,
		Name:          name,
		Element:       element,
		TransposeFlag: tf,
	}
}

func (t Type) WithQualifiers(q Qualifier) Type {
	t.Qualifiers |= q
	return t
}

func (t Type) Const() Type     { return t.WithQualifiers(QualifierConst) }
func (t Type) Volatile() Type  { return t.WithQualifiers(QualifierVolatile) }
func (t Type) Reference() Type { return t.WithQualifiers(QualifierReference) }

func (t Type) RemoveReference() Type {
	t.Qualifiers &^= QualifierReference
	return t
}

func (t Type) RemoveCV() Type {
	t.Qualifiers &^= qualifierCV
	return t
}

// Decay strips every top-level qualifier.
func (t Type) Decay() Type {
	return t.RemoveReference().RemoveCV()
}

func (t Type) String() string {
	var sb strings.Builder
	if t.Qualifiers&QualifierConst != 0 {
		sb.WriteString("const ")
	}
	if t.Qualifiers&QualifierVolatile != 0 {
		sb.WriteString("volatile ")
	}
	name := t.Name
	if name == "" {
		switch t.TypeID {
		case TypeIDDenseVector:
			name = "DenseVector"
		case TypeIDSparseVector:
			name = "SparseVector"
		}
	}
	element := t.Element
	if element == "" {
		element = "double"
	}
	fmt.Fprintf(&sb, "%s<%s,%s>", name, element, t.TransposeFlag)
	if t.Qualifiers&QualifierReference != 0 {
		sb.WriteString("&")
	}
	return sb.String()
}
