package engine

import (
	"fmt"
	"log"
	"sort"

	"github.com/dgraph-io/ristretto"
	"github.com/google/btree"
	"github.com/pkg/errors"

	. "github.com/cube2222/exprtraits/exprtraits"
)

const BTreeDefaultDegree = 8

// Engine resolves operations over a catalog of rules.
type Engine struct {
	operations map[Operation]OperationDetails
	index      *btree.BTree
	cache      *ristretto.Cache
}

type ruleItem struct {
	rule Rule
}

func (item *ruleItem) Less(than btree.Item) bool {
	thanTyped, ok := than.(*ruleItem)
	if !ok {
		panic(fmt.Sprintf("invalid key comparison: %T", than))
	}

	return item.rule.Name < thanTyped.rule.Name
}

func New(operations map[Operation]OperationDetails, opts ...Option) (*Engine, error) {
	options := getOptions(opts...)

	index := btree.New(BTreeDefaultDegree)
	for op, details := range operations {
		for i, rule := range details.Rules {
			if rule.Name == "" {
				return nil, errors.Errorf("rule %d of operation %s has no name", i, op)
			}
			if rule.Condition == nil {
				return nil, errors.Errorf("rule %s has no condition", rule.Name)
			}
			if rule.Operation != op {
				return nil, errors.Errorf("rule %s is for operation %s, but is registered under %s", rule.Name, rule.Operation, op)
			}
			if index.Has(&ruleItem{rule: rule}) {
				return nil, errors.Errorf("duplicate rule %s", rule.Name)
			}
			index.ReplaceOrInsert(&ruleItem{rule: rule})
		}
	}

	engine := &Engine{
		operations: operations,
		index:      index,
	}

	if options.cacheEnabled {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: options.maxEntries * 10,
			MaxCost:     options.maxEntries,
			BufferItems: 64,
		})
		if err != nil {
			return nil, errors.Wrap(err, "couldn't create resolution cache")
		}
		engine.cache = cache
	}

	log.Printf("engine: %d rules across %d operations, cache enabled: %t", index.Len(), len(operations), options.cacheEnabled)

	return engine, nil
}

func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

func (e *Engine) details(op Operation) (OperationDetails, error) {
	details, ok := e.operations[op]
	if !ok {
		return OperationDetails{}, errors.Wrapf(ErrUnknownOperation, "%s", op)
	}
	return details, nil
}

// Resolve returns the expression of the first rule of op accepting the operands, or Invalid if none does.
// The only error is an operation missing from the catalog.
func (e *Engine) Resolve(op Operation, left, right Type) (Result, error) {
	details, err := e.details(op)
	if err != nil {
		return nil, err
	}

	key := cacheKey(op, left, right)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached.(Result), nil
		}
	}

	out := Result(Invalid)
	for _, rule := range details.Rules {
		if res := rule.Resolve(left, right); !IsInvalid(res) {
			out = res
			break
		}
	}

	if e.cache != nil {
		e.cache.Set(key, out, 1)
	}
	return out, nil
}

func cacheKey(op Operation, left, right Type) string {
	return fmt.Sprintf("%d|%#v|%#v", op, left, right)
}

// Trace is like Resolve, but also returns the operand pairs visited on the way.
// If no rule matches, the steps are those of the first rule, as normalization doesn't depend on the rule.
func (e *Engine) Trace(op Operation, left, right Type) (Trace, error) {
	details, err := e.details(op)
	if err != nil {
		return Trace{}, err
	}

	var first *Trace
	for _, rule := range details.Rules {
		trace := rule.Trace(left, right)
		if !IsInvalid(trace.Result) {
			return trace, nil
		}
		if first == nil {
			first = &trace
		}
	}
	if first == nil {
		return Trace{
			Steps:  []Step{{Left: left, Right: right}},
			Result: Invalid,
		}, nil
	}
	return Trace{
		Steps:  first.Steps,
		Result: Invalid,
	}, nil
}

func (e *Engine) Description(op Operation) (string, error) {
	details, err := e.details(op)
	if err != nil {
		return "", err
	}
	return details.Description, nil
}

// Rules returns all rules ordered by name.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, 0, e.index.Len())
	e.index.Ascend(func(i btree.Item) bool {
		out = append(out, i.(*ruleItem).rule)
		return true
	})
	return out
}

func (e *Engine) Operations() []Operation {
	out := make([]Operation, 0, len(e.operations))
	for op := range e.operations {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// Matrix resolves op for every ordered pair of types. Rows are left operands, columns right operands.
func (e *Engine) Matrix(op Operation, types []Type) ([][]Result, error) {
	out := make([][]Result, len(types))
	for i := range types {
		out[i] = make([]Result, len(types))
		for j := range types {
			res, err := e.Resolve(op, types[i], types[j])
			if err != nil {
				return nil, err
			}
			out[i][j] = res
		}
	}
	return out, nil
}

type Ambiguity struct {
	Operation   Operation
	Left, Right Type
	Rules       []string
}

// Ambiguities lists operand pairs which more than one rule of the same operation accepts.
func (e *Engine) Ambiguities(types []Type) []Ambiguity {
	var out []Ambiguity
	for _, op := range e.Operations() {
		for _, left := range types {
			for _, right := range types {
				var matching []string
				for _, rule := range e.operations[op].Rules {
					if !IsInvalid(rule.Resolve(left, right)) {
						matching = append(matching, rule.Name)
					}
				}
				if len(matching) > 1 {
					out = append(out, Ambiguity{
						Operation: op,
						Left:      left,
						Right:     right,
						Rules:     matching,
					})
				}
			}
		}
	}
	return out
}
