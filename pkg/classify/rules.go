// Package classify lets a caller extend node categorization with rules
// evaluated at translate time instead of recompiling pkg/graph's built-in
// class-type registries. A rule is an expr-lang boolean expression
// evaluated against a node's class_type and literal inputs; the first
// matching rule's category wins.
package classify

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rawdiffusion/comfytranslate/pkg/types"
)

// Rule is one extension entry: when Expression evaluates true against a
// node's environment, the node is categorized as Category.
type Rule struct {
	Expression string
	Category   types.NodeCategory
}

// env is the expr-lang evaluation environment exposed to a rule.
type env struct {
	ClassType string         `expr:"class_type"`
	Inputs    map[string]any `expr:"inputs"`
}

// Registry holds a set of rules plus their compiled, cached programs and
// implements pkg/graph.Classifier.
type Registry struct {
	mu           sync.RWMutex
	rules        []Rule
	programCache map[string]*vm.Program
}

// NewRegistry returns an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{programCache: make(map[string]*vm.Program)}
}

// Register adds a rule, compiling and caching its program immediately so
// a malformed expression is reported at registration time rather than
// during translation.
func (r *Registry) Register(rule Rule) error {
	program, err := expr.Compile(rule.Expression, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("classify: compiling rule %q: %w", rule.Expression, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.programCache[rule.Expression] = program
	r.rules = append(r.rules, rule)
	return nil
}

// Categorize runs every registered rule, in registration order, against a
// node description and returns the category of the first match.
func (r *Registry) Categorize(classType string) (types.NodeCategory, bool) {
	return r.CategorizeNode(classType, nil)
}

// CategorizeNode is the richer entry point: inputs lets a rule inspect
// literal values (e.g. a checkpoint filename), not just the class_type.
func (r *Registry) CategorizeNode(classType string, inputs map[string]any) (types.NodeCategory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := env{ClassType: classType, Inputs: inputs}
	for _, rule := range r.rules {
		program := r.programCache[rule.Expression]
		output, err := expr.Run(program, e)
		if err != nil {
			continue
		}
		if matched, ok := output.(bool); ok && matched {
			return rule.Category, true
		}
	}
	return "", false
}
