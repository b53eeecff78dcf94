package cmd

import (
	"fmt"
	"io"

	"github.com/cube2222/exprtraits/config"
	"github.com/cube2222/exprtraits/engine"
	"github.com/cube2222/exprtraits/exprtraits"
	"github.com/cube2222/exprtraits/outputs/formats"
	"github.com/cube2222/exprtraits/parser"
	"github.com/cube2222/exprtraits/rules"
)

type environment struct {
	config *config.Config
	parser *parser.Parser
	engine *engine.Engine
}

func newEnvironment() (*environment, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.ReadConfig(configPath)
	} else {
		cfg, err = config.Read()
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't read config: %w", err)
	}

	classes, err := cfg.Classes()
	if err != nil {
		return nil, fmt.Errorf("invalid vector classes in config: %w", err)
	}

	var opts []engine.Option
	if cfg.Cache.Enabled {
		opts = append(opts, engine.WithCache(cfg.Cache.MaxEntries))
	}
	e, err := engine.New(rules.RuleMap(), opts...)
	if err != nil {
		return nil, fmt.Errorf("couldn't create engine: %w", err)
	}

	return &environment{
		config: cfg,
		parser: parser.NewParser(classes),
		engine: e,
	}, nil
}

func (env *environment) Close() {
	env.engine.Close()
}

func (env *environment) formatter(w io.Writer) (formats.Formatter, error) {
	name := env.config.Output
	if outputFormat != "" {
		name = outputFormat
	}
	return formats.NewFormatter(name, w)
}

func (env *environment) parseOperation(op, left, right string) (parser.BinaryExpression, error) {
	operation, err := exprtraits.ParseOperation(op)
	if err != nil {
		return parser.BinaryExpression{}, err
	}
	leftType, err := env.parser.Parse(left)
	if err != nil {
		return parser.BinaryExpression{}, fmt.Errorf("couldn't parse left operand: %w", err)
	}
	rightType, err := env.parser.Parse(right)
	if err != nil {
		return parser.BinaryExpression{}, fmt.Errorf("couldn't parse right operand: %w", err)
	}
	return parser.BinaryExpression{
		Operation: operation,
		Left:      leftType,
		Right:     rightType,
	}, nil
}

func (env *environment) record(expr parser.BinaryExpression) (formats.Record, error) {
	trace, err := env.engine.Trace(expr.Operation, expr.Left, expr.Right)
	if err != nil {
		return formats.Record{}, err
	}
	res, err := env.engine.Resolve(expr.Operation, expr.Left, expr.Right)
	if err != nil {
		return formats.Record{}, err
	}
	return formats.Record{
		Operation: expr.Operation,
		Left:      expr.Left,
		Right:     expr.Right,
		Rule:      trace.Rule,
		Result:    res,
	}, nil
}
