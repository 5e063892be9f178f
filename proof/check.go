package proof

import (
	"fmt"

	"github.com/gofitch/gofitch/logic"
)

// ruleSpecs gives, for every rule with justifications, its fixed arity
// and which argument positions name a subproof rather than a single step.
var ruleSpecs = map[Rule]struct {
	arity int
	sub   []bool
}{
	RuleAndIntro:     {2, nil},
	RuleAndElimL:     {1, nil},
	RuleAndElimR:     {1, nil},
	RuleOrIntroL:     {1, nil},
	RuleOrIntroR:     {1, nil},
	RuleOrElim:       {3, []bool{false, true, true}},
	RuleImpliesIntro: {1, []bool{true}},
	RuleImpliesElim:  {2, nil},
	RuleNotIntro:     {1, []bool{true}},
	RuleNotElim:      {1, nil},
	RuleIffIntro:     {2, nil},
	RuleIffElim:      {2, nil},
	RuleBottomElim:   {1, nil},
	RuleRAA:          {1, []bool{true}},
}

// Check validates a flat list of proof steps against the premises, the
// goal conclusion and an optional theorem library. It is total: malformed
// input yields diagnostics, never a panic. Each step contributes at most
// one error, checks for later steps continue regardless, and the error
// list preserves step order.
func Check(steps []Step, premises []logic.Formula, conclusion logic.Formula, lib Library) Result {
	var res Result
	if len(steps) == 0 {
		res.Errors = append(res.Errors, ValidationError{
			Message: "the proof has no steps",
			Code:    CodeEmptyProof,
		})
		return res
	}
	c := &checker{
		steps:    steps,
		premises: premises,
		scopes:   computeScopes(steps),
		index:    make(map[string]int, len(steps)),
		lib:      lib,
	}
	c.byStart = make(map[int]scope, len(c.scopes))
	for _, sc := range c.scopes {
		c.byStart[sc.start] = sc
	}
	for i, s := range steps {
		c.index[s.ID] = i
	}
	for i := range steps {
		if err := c.checkStep(i); err != nil {
			res.Errors = append(res.Errors, *err)
		}
	}
	res.Valid = len(res.Errors) == 0
	last := steps[len(steps)-1]
	res.Complete = last.Depth == 0 && last.Formula.Equal(conclusion)
	return res
}

type checker struct {
	steps    []Step
	premises []logic.Formula
	scopes   []scope
	byStart  map[int]scope
	index    map[string]int
	lib      Library
}

// justification is a resolved reference: the target index and, when the
// rule consumes a subproof at that position, the subproof's scope.
type justification struct {
	target int
	sub    scope
	isSub  bool
}

func (j justification) formula(steps []Step) logic.Formula {
	return steps[j.target].Formula
}

func fail(s Step, code Code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		StepID:  s.ID,
		Message: fmt.Sprintf(format, args...),
		Code:    code,
	}
}

func (c *checker) checkStep(i int) *ValidationError {
	s := c.steps[i]
	switch s.Rule {
	case RuleAssumption:
		return c.checkAssumption(i)
	case RuleTheorem:
		return c.checkTheorem(s)
	}
	rs, ok := ruleSpecs[s.Rule]
	if !ok {
		return fail(s, CodeUnknownRule, "unknown rule %q", string(s.Rule))
	}
	if len(s.Justifications) < rs.arity {
		return fail(s, CodeInsufficientJustifications,
			"%s needs %d justifications, got %d", s.Rule, rs.arity, len(s.Justifications))
	}
	if len(s.Justifications) > rs.arity {
		return fail(s, CodeTooManyJustifications,
			"%s needs %d justifications, got %d", s.Rule, rs.arity, len(s.Justifications))
	}
	justs := make([]justification, rs.arity)
	for k, id := range s.Justifications {
		target, ok := c.index[id]
		if !ok || target >= i {
			return fail(s, CodeJustificationNotFound, "no earlier step with id %s", id)
		}
		j := justification{target: target}
		if sub, ok := c.byStart[target]; rs.sub != nil && rs.sub[k] && ok {
			// The rule consumes the whole subproof this step opens, so
			// accessibility is judged for the subproof, not the line.
			if !subproofAccessible(c.scopes, sub, i) {
				return fail(s, CodeInaccessibleJustification,
					"the subproof opened at step %s is not accessible from here", id)
			}
			j.sub = sub
			j.isSub = true
		} else if !stepAccessible(c.scopes, target, i) {
			return fail(s, CodeInaccessibleJustification,
				"step %s lies inside a closed subproof", id)
		}
		justs[k] = j
	}
	return c.checkSchema(i, justs)
}

// checkAssumption accepts an assumption that either opens a subproof or
// restates a premise at the outer level.
func (c *checker) checkAssumption(i int) *ValidationError {
	s := c.steps[i]
	if s.Depth == 0 {
		for _, p := range c.premises {
			if s.Formula.Equal(p) {
				return nil
			}
		}
		return fail(s, CodeWrongPremiseType,
			"assumption %s is not among the premises", logic.Print(s.Formula, logic.UTF8))
	}
	if len(s.Justifications) > 0 {
		return fail(s, CodeTooManyJustifications,
			"assumption needs 0 justifications, got %d", len(s.Justifications))
	}
	return nil
}

func (c *checker) checkTheorem(s Step) *ValidationError {
	if s.TheoremID == "" {
		return fail(s, CodeMissingTheoremID, "theorem step carries no theorem id")
	}
	thm, ok := c.lib[s.TheoremID]
	if !ok {
		return fail(s, CodeTheoremNotFound, "no theorem with id %s", s.TheoremID)
	}
	if !s.Formula.Equal(thm.Conclusion) {
		return fail(s, CodeTheoremMismatch,
			"formula %s does not match the conclusion %s of theorem %s",
			logic.Print(s.Formula, logic.UTF8), logic.Print(thm.Conclusion, logic.UTF8), s.TheoremID)
	}
	return nil
}
