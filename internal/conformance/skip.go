package conformance

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

// SkipRule names one known divergence between this module's pairwise LB25
// approximation (see the package comment on lb25Pairs in the engine) and
// full UAX #14 conformance. Expression is a CEL predicate over two int
// variables, index (the test case's 1-based position in the input file)
// and length (its scalar count); a case is skipped if any rule's
// expression evaluates true for it.
type SkipRule struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Reason     string `yaml:"reason"`
}

// SkipDocument is the top-level shape of a skip-rules YAML file.
type SkipDocument struct {
	Rules []SkipRule `yaml:"rules"`
}

// LoadSkipDocument parses a skip-rules YAML document.
func LoadSkipDocument(data []byte) (SkipDocument, error) {
	var doc SkipDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SkipDocument{}, fmt.Errorf("conformance: parsing skip rules: %w", err)
	}
	return doc, nil
}

// compiledSkip is a SkipDocument with every rule's CEL expression compiled
// once, ready for repeated evaluation across a whole test file.
type compiledSkip struct {
	env     *cel.Env
	rules   []SkipRule
	prog    []cel.Program
}

// Compile builds a reusable evaluator from doc. It returns an error if any
// rule's expression fails to compile or does not evaluate to bool.
func Compile(doc SkipDocument) (*compiledSkip, error) {
	env, err := cel.NewEnv(
		cel.Variable("index", cel.IntType),
		cel.Variable("length", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("conformance: creating CEL environment: %w", err)
	}

	cs := &compiledSkip{env: env, rules: doc.Rules, prog: make([]cel.Program, len(doc.Rules))}
	for i, rule := range doc.Rules {
		ast, issues := env.Compile(rule.Expression)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("conformance: rule %q: %w", rule.Name, issues.Err())
		}
		if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
			return nil, fmt.Errorf("conformance: rule %q: expression evaluates to %v, want bool", rule.Name, ast.OutputType())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("conformance: rule %q: %w", rule.Name, err)
		}
		cs.prog[i] = prg
	}
	return cs, nil
}

// Skip reports whether the case at the given 1-based index with the given
// scalar length matches any compiled rule, and if so which rule's name.
func (cs *compiledSkip) Skip(index, length int) (name string, skip bool) {
	vars := map[string]any{"index": int64(index), "length": int64(length)}
	for i, prg := range cs.prog {
		out, _, err := prg.Eval(vars)
		if err != nil {
			continue
		}
		if b, ok := out.Value().(bool); ok && b {
			return cs.rules[i].Name, true
		}
	}
	return "", false
}
