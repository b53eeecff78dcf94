package graph

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/cube2222/exprtraits/exprtraits"
)

type Field struct {
	Name, Value string
}

type Node struct {
	Name   string
	Fields []Field
	Next   *Node
	// Edge is the label of the edge to Next.
	Edge string
}

func (n *Node) AddField(name, value string) {
	n.Fields = append(n.Fields, Field{
		Name:  name,
		Value: value,
	})
}

// FromTrace lays out a resolution as a chain: one node per visited operand pair, followed by the result.
func FromTrace(op exprtraits.Operation, trace exprtraits.Trace) *Node {
	root := &Node{Name: "resolve " + op.String()}
	if trace.Rule != "" {
		root.AddField("rule", trace.Rule)
	}
	root.Edge = "operands"

	cur := root
	for i, step := range trace.Steps {
		node := &Node{Name: fmt.Sprintf("step %d", i)}
		node.AddField("left", step.Left.String())
		node.AddField("right", step.Right.String())
		if exprtraits.IsQualified(step.Left) || exprtraits.IsQualified(step.Right) {
			node.Edge = "decay"
		} else {
			node.Edge = "classify"
		}
		cur.Next = node
		cur = node
	}

	result := &Node{Name: "result"}
	if expr, ok := exprtraits.AsExpression(trace.Result); ok {
		result.AddField("expression", expr.Name)
		result.AddField("left", expr.Left.String())
		result.AddField("right", expr.Right.String())
		result.AddField("transpose", fmt.Sprint(bool(expr.TransposeFlag)))
	} else {
		result.AddField("type", trace.Result.String())
	}
	cur.Next = result

	return root
}

func Show(node *Node) (*gographviz.Graph, error) {
	graph := gographviz.NewGraph()
	graph.Directed = true
	if err := graph.AddAttr("", "rankdir", "LR"); err != nil {
		return nil, errors.Wrap(err, "couldn't set graph direction")
	}

	var prev string
	var edge string
	for i := 0; node != nil; i++ {
		id := fmt.Sprintf("%s_%d", strings.Replace(node.Name, " ", "_", -1), i)
		if err := graph.AddNode("", id, map[string]string{
			"shape": "record",
			"label": label(node),
		}); err != nil {
			return nil, errors.Wrapf(err, "couldn't add node %s", node.Name)
		}
		if prev != "" {
			if err := graph.AddEdge(prev, id, true, map[string]string{
				"label": fmt.Sprintf("%q", edge),
			}); err != nil {
				return nil, errors.Wrapf(err, "couldn't add edge to %s", node.Name)
			}
		}
		prev = id
		edge = node.Edge
		node = node.Next
	}

	return graph, nil
}

func label(node *Node) string {
	parts := []string{escape(node.Name)}
	for _, field := range node.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", escape(field.Name), escape(field.Value)))
	}
	return fmt.Sprintf("\"{%s}\"", strings.Join(parts, "|"))
}

var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`<`, `\<`,
	`>`, `\>`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
)

func escape(s string) string {
	return recordEscaper.Replace(s)
}
