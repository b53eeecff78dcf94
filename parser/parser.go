package parser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/cube2222/exprtraits/exprtraits"
)

var DefaultClasses = map[string]exprtraits.TypeID{
	"DynamicVector":    exprtraits.TypeIDDenseVector,
	"StaticVector":     exprtraits.TypeIDDenseVector,
	"HybridVector":     exprtraits.TypeIDDenseVector,
	"CustomVector":     exprtraits.TypeIDDenseVector,
	"DenseSubvector":   exprtraits.TypeIDDenseVector,
	"DenseVector":      exprtraits.TypeIDDenseVector,
	"CompressedVector": exprtraits.TypeIDSparseVector,
	"SparseSubvector":  exprtraits.TypeIDSparseVector,
	"SparseVector":     exprtraits.TypeIDSparseVector,
}

var ErrUnknownClass = errors.New("unknown vector class")

var sizeLiteral = regexp.MustCompile(`^[0-9]+[uUlL]*$`)

// Parser turns spellings like "const DynamicVector<double,columnVector>&" into operand descriptors.
type Parser struct {
	classes map[string]exprtraits.TypeID
}

func NewParser(extraClasses map[string]exprtraits.TypeID) *Parser {
	classes := make(map[string]exprtraits.TypeID, len(DefaultClasses)+len(extraClasses))
	for name, id := range DefaultClasses {
		classes[name] = id
	}
	for name, id := range extraClasses {
		classes[name] = id
	}
	return &Parser{
		classes: classes,
	}
}

func (p *Parser) Classes() []string {
	out := make([]string, 0, len(p.classes))
	for name := range p.classes {
		out = append(out, name)
	}
	return out
}

func (p *Parser) Parse(text string) (exprtraits.Type, error) {
	t, err := p.parse(strings.TrimSpace(text))
	if err != nil {
		return exprtraits.Type{}, errors.Wrapf(err, "couldn't parse type '%s'", text)
	}
	return t, nil
}

func (p *Parser) parse(text string) (exprtraits.Type, error) {
	var qualifiers exprtraits.Qualifier

	// Both "&" and "&&" are references.
	for strings.HasSuffix(text, "&") {
		qualifiers |= exprtraits.QualifierReference
		text = strings.TrimSpace(strings.TrimSuffix(text, "&"))
	}

	// cv-qualifiers may come before or after the class, as in "DynamicVector<double> const".
leading:
	for {
		word, rest := splitWord(text)
		switch word {
		case "const":
			qualifiers |= exprtraits.QualifierConst
		case "volatile":
			qualifiers |= exprtraits.QualifierVolatile
		default:
			break leading
		}
		text = rest
	}
trailing:
	for {
		switch {
		case strings.HasSuffix(text, " const"):
			qualifiers |= exprtraits.QualifierConst
			text = strings.TrimSpace(strings.TrimSuffix(text, " const"))
		case strings.HasSuffix(text, " volatile"):
			qualifiers |= exprtraits.QualifierVolatile
			text = strings.TrimSpace(strings.TrimSuffix(text, " volatile"))
		default:
			break trailing
		}
	}

	if text == "" {
		return exprtraits.Type{}, errors.New("missing vector class")
	}

	name := text
	var args []string
	if i := strings.Index(text, "<"); i != -1 {
		if !strings.HasSuffix(text, ">") {
			return exprtraits.Type{}, errors.Errorf("unterminated template argument list in '%s'", text)
		}
		name = strings.TrimSpace(text[:i])
		var err error
		args, err = splitArguments(text[i+1 : len(text)-1])
		if err != nil {
			return exprtraits.Type{}, err
		}
	}
	name = strings.TrimPrefix(name, "blaze::")

	id, ok := p.classes[name]
	if !ok {
		return exprtraits.Type{}, errors.Wrapf(ErrUnknownClass, "'%s'", name)
	}

	t := exprtraits.Type{
		TypeID:        id,
		Name:          name,
		Element:       "double",
		TransposeFlag: exprtraits.ColumnVector,
		Qualifiers:    qualifiers,
	}

	if len(args) > 0 && args[0] != "" {
		t.Element = args[0]
	}
	// The transpose flag is the last template argument. Sizes and CustomVector alignment/padding flags leave the default.
	if len(args) > 1 {
		flag := args[len(args)-1]
		switch strings.TrimPrefix(flag, "blaze::") {
		case "columnVector", "false":
			t.TransposeFlag = exprtraits.ColumnVector
		case "rowVector", "true":
			t.TransposeFlag = exprtraits.RowVector
		case "aligned", "unaligned", "padded", "unpadded":
		default:
			if !sizeLiteral.MatchString(flag) {
				return exprtraits.Type{}, errors.Errorf("invalid transpose flag '%s', must be one of: columnVector, rowVector, false, true", flag)
			}
		}
	}

	return t, nil
}

func splitWord(text string) (string, string) {
	i := strings.IndexAny(text, " \t")
	if i == -1 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i+1:])
}

// splitArguments splits a template argument list on top-level commas.
func splitArguments(text string) ([]string, error) {
	var out []string
	depth := 0
	start := 0
	for i, r := range text {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, errors.Errorf("unbalanced '>' in template argument list '%s'", text)
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.Errorf("unbalanced '<' in template argument list '%s'", text)
	}
	out = append(out, strings.TrimSpace(text[start:]))
	return out, nil
}
