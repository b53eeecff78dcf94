package formats

import (
	"io"

	"github.com/valyala/fastjson"

	"github.com/cube2222/exprtraits/exprtraits"
)

type JSONFormatter struct {
	buf   []byte
	arena *fastjson.Arena
	w     io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{
		buf:   make([]byte, 0, 1024),
		arena: new(fastjson.Arena),
		w:     w,
	}
}

func (t *JSONFormatter) Write(record Record) error {
	obj := t.arena.NewObject()
	obj.Set("operation", t.arena.NewString(record.Operation.String()))
	obj.Set("left", TypeToJson(t.arena, record.Left))
	obj.Set("right", TypeToJson(t.arena, record.Right))
	if record.Rule != "" {
		obj.Set("rule", t.arena.NewString(record.Rule))
	} else {
		obj.Set("rule", t.arena.NewNull())
	}
	obj.Set("result", ResultToJson(t.arena, record.Result))

	t.buf = obj.MarshalTo(t.buf)
	t.buf = append(t.buf, '\n')
	_, err := t.w.Write(t.buf)
	t.buf = t.buf[:0]
	t.arena.Reset()
	return err
}

func (t *JSONFormatter) Close() error {
	return nil
}

func TypeToJson(arena *fastjson.Arena, t exprtraits.Type) *fastjson.Value {
	obj := arena.NewObject()
	obj.Set("type", arena.NewString(t.String()))
	obj.Set("storage", arena.NewString(t.TypeID.String()))
	obj.Set("orientation", arena.NewString(t.TransposeFlag.String()))
	qualifiers := arena.NewArray()
	i := 0
	for _, q := range []struct {
		name      string
		predicate exprtraits.Predicate
	}{
		{"const", exprtraits.IsConst},
		{"volatile", exprtraits.IsVolatile},
		{"reference", exprtraits.IsReference},
	} {
		if q.predicate(t) {
			qualifiers.SetArrayItem(i, arena.NewString(q.name))
			i++
		}
	}
	obj.Set("qualifiers", qualifiers)
	return obj
}

func ResultToJson(arena *fastjson.Arena, res exprtraits.Result) *fastjson.Value {
	expr, ok := exprtraits.AsExpression(res)
	if !ok {
		return arena.NewNull()
	}
	obj := arena.NewObject()
	obj.Set("expression", arena.NewString(expr.Name))
	obj.Set("type", arena.NewString(expr.String()))
	if expr.TransposeFlag == exprtraits.RowVector {
		obj.Set("transpose", arena.NewTrue())
	} else {
		obj.Set("transpose", arena.NewFalse())
	}
	return obj
}
