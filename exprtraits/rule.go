package exprtraits

// Rule resolves the expression type of one operation over one combination of operand categories.
type Rule struct {
	Name       string
	Operation  Operation
	Condition  Condition
	Expression string
	// TransposeFlag is the orientation of the produced expression.
	// It's a property of the rule, never derived from the operands.
	TransposeFlag TransposeFlag
}

type OperationDetails struct {
	Description string
	Rules       []Rule
}

type Step struct {
	Left, Right Type
}

type Trace struct {
	Rule   string
	Steps  []Step
	Result Result
}

// Depth is the number of times the operands had to be normalized.
func (t Trace) Depth() int {
	if len(t.Steps) == 0 {
		return 0
	}
	return len(t.Steps) - 1
}

func (r Rule) Resolve(left, right Type) Result {
	return r.Trace(left, right).Result
}

func (r Rule) Trace(left, right Type) Trace {
	trace := Trace{Rule: r.Name}
	trace.Result = r.resolve(left, right, &trace.Steps)
	return trace
}

func (r Rule) resolve(left, right Type, steps *[]Step) Result {
	*steps = append(*steps, Step{Left: left, Right: right})

	if IsQualified(left) || IsQualified(right) {
		// Decay always clears at least one bit here, so this bottoms out.
		return r.resolve(left.Decay(), right.Decay(), steps)
	}

	if r.Condition == nil || !r.Condition(left, right) {
		return Invalid
	}
	return Expression{
		Name:          r.Expression,
		Operation:     r.Operation,
		Left:          left,
		Right:         right,
		TransposeFlag: r.TransposeFlag,
	}
}

// ResolveType is shorthand for rule.Resolve(left, right).
func ResolveType(rule Rule, left, right Type) Result {
	return rule.Resolve(left, right)
}
