package truth

import (
	"fmt"
	"sort"

	"github.com/gofitch/gofitch/logic"
)

// unionVars collects the variables of all given formulas, sorted
// ascending, and enforces the MaxVars bound.
func unionVars(fs []logic.Formula) ([]string, error) {
	seen := make(map[string]struct{})
	for _, f := range fs {
		for _, name := range logic.Variables(f) {
			seen[name] = struct{}{}
		}
	}
	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	if len(vars) > MaxVars {
		return nil, fmt.Errorf("%d distinct variables, more than the %d supported", len(vars), MaxVars)
	}
	return vars, nil
}

// Equivalent reports whether a and b evaluate identically under every
// assignment over the union of their variables.
func Equivalent(a, b logic.Formula) (bool, error) {
	vars, err := unionVars([]logic.Formula{a, b})
	if err != nil {
		return false, err
	}
	for i := 0; i < 1<<len(vars); i++ {
		model := assignment(vars, i)
		if a.Eval(model) != b.Eval(model) {
			return false, nil
		}
	}
	return true, nil
}

// Satisfiable reports whether some assignment makes every formula in fs
// true at once. The empty list is satisfiable.
func Satisfiable(fs []logic.Formula) (bool, error) {
	vars, err := unionVars(fs)
	if err != nil {
		return false, err
	}
	for i := 0; i < 1<<len(vars); i++ {
		model := assignment(vars, i)
		if allTrue(fs, model) {
			return true, nil
		}
	}
	return false, nil
}

// Entails reports whether the premises semantically entail the
// conclusion: no assignment makes every premise true and the conclusion
// false.
func Entails(premises []logic.Formula, conclusion logic.Formula) (bool, error) {
	cx, err := Counterexample(premises, conclusion)
	if err != nil {
		return false, err
	}
	return cx == nil, nil
}

// Counterexample returns the first assignment, in enumeration order, that
// makes every premise true and the conclusion false, or nil when the
// entailment holds.
func Counterexample(premises []logic.Formula, conclusion logic.Formula) (map[string]bool, error) {
	vars, err := unionVars(append(append([]logic.Formula{}, premises...), conclusion))
	if err != nil {
		return nil, err
	}
	for i := 0; i < 1<<len(vars); i++ {
		model := assignment(vars, i)
		if allTrue(premises, model) && !conclusion.Eval(model) {
			return model, nil
		}
	}
	return nil, nil
}

func allTrue(fs []logic.Formula, model map[string]bool) bool {
	for _, f := range fs {
		if !f.Eval(model) {
			return false
		}
	}
	return true
}
