package formats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"

	"github.com/cube2222/exprtraits/exprtraits"
)

var (
	dense  = exprtraits.DenseVector("DynamicVector", "double", exprtraits.ColumnVector)
	sparse = exprtraits.SparseVector("CompressedVector", "double", exprtraits.ColumnVector)

	validRecord = Record{
		Operation: exprtraits.OperationCross,
		Left:      dense.Const(),
		Right:     sparse,
		Rule:      "DVecSVecCrossExprTrait",
		Result: exprtraits.Expression{
			Name:      "DVecSVecCrossExpr",
			Operation: exprtraits.OperationCross,
			Left:      dense,
			Right:     sparse,
		},
	}
	invalidRecord = Record{
		Operation: exprtraits.OperationCross,
		Left:      sparse,
		Right:     sparse.Reference(),
		Result:    exprtraits.Invalid,
	}
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	require.NoError(t, f.Write(validRecord))
	require.NoError(t, f.Write(invalidRecord))
	require.NoError(t, f.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var p fastjson.Parser
	v, err := p.Parse(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "cross", string(v.GetStringBytes("operation")))
	assert.Equal(t, "const DynamicVector<double,columnVector>", string(v.GetStringBytes("left", "type")))
	assert.Equal(t, "dense", string(v.GetStringBytes("left", "storage")))
	assert.Equal(t, "const", string(v.GetStringBytes("left", "qualifiers", "0")))
	assert.Equal(t, "DVecSVecCrossExprTrait", string(v.GetStringBytes("rule")))
	assert.Equal(t, "DVecSVecCrossExpr", string(v.GetStringBytes("result", "expression")))
	assert.False(t, v.GetBool("result", "transpose"))

	v, err = p.Parse(lines[1])
	require.NoError(t, err)
	assert.Equal(t, fastjson.TypeNull, v.Get("rule").Type())
	assert.Equal(t, fastjson.TypeNull, v.Get("result").Type())
	assert.Equal(t, "reference", string(v.GetStringBytes("right", "qualifiers", "0")))
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(&buf)
	require.NoError(t, f.Write(validRecord))
	require.NoError(t, f.Write(invalidRecord))
	require.NoError(t, f.Close())

	var out []yamlRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.True(t, out[0].Valid)
	assert.Equal(t, "DVecSVecCrossExpr", out[0].Expression.Name)
	assert.False(t, out[1].Valid)
	assert.Nil(t, out[1].Expression)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)
	require.NoError(t, f.Write(invalidRecord))
	require.NoError(t, f.Close())

	assert.Equal(t,
		"operation,left,right,rule,result\n"+
			"cross,\"CompressedVector<double,columnVector>\",\"CompressedVector<double,columnVector>&\",-,INVALID_TYPE\n",
		buf.String(),
	)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("table", &buf)
	require.NoError(t, err)
	require.NoError(t, f.Write(validRecord))
	require.NoError(t, f.Close())

	out := buf.String()
	assert.Contains(t, out, "operation")
	assert.Contains(t, out, "DVecSVecCrossExprTrait")

	_, err = NewFormatter("xml", &buf)
	assert.Error(t, err)
}

func TestWriteMatrix(t *testing.T) {
	var buf bytes.Buffer
	WriteMatrix(&buf, []exprtraits.Type{dense, sparse}, [][]exprtraits.Result{
		{exprtraits.Invalid, validRecord.Result},
		{exprtraits.Invalid, exprtraits.Invalid},
	})

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "DVecSVecCrossExpr"))
	assert.Contains(t, out, "left \\ right")
}
