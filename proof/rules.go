package proof

import (
	"github.com/gofitch/gofitch/logic"
)

func pp(f logic.Formula) string {
	return logic.Print(f, logic.UTF8)
}

// checkSchema applies the per-rule shape test to a step whose arity and
// references have already been validated.
func (c *checker) checkSchema(i int, justs []justification) *ValidationError {
	s := c.steps[i]
	switch s.Rule {
	case RuleAndIntro:
		return c.checkAndIntro(s, justs)
	case RuleAndElimL, RuleAndElimR:
		return c.checkAndElim(s, justs)
	case RuleOrIntroL, RuleOrIntroR:
		return c.checkOrIntro(s, justs)
	case RuleOrElim:
		return c.checkOrElim(s, justs)
	case RuleImpliesIntro:
		return c.checkImpliesIntro(s, justs)
	case RuleImpliesElim:
		return c.checkImpliesElim(s, justs)
	case RuleNotIntro:
		return c.checkNotIntro(s, justs)
	case RuleNotElim:
		return c.checkNotElim(s, justs)
	case RuleIffIntro:
		return c.checkIffIntro(s, justs)
	case RuleIffElim:
		return c.checkIffElim(s, justs)
	case RuleBottomElim:
		return c.checkBottomElim(s, justs)
	case RuleRAA:
		return c.checkRAA(s, justs)
	}
	return fail(s, CodeUnknownRule, "unknown rule %q", string(s.Rule))
}

// checkSubproof compares a cited subproof against the assumption and last
// line the rule demands.
func (c *checker) checkSubproof(s Step, j justification, wantAssume, wantLast logic.Formula) *ValidationError {
	if !j.isSub {
		return fail(s, CodeInvalidSubproof,
			"step %s does not open a subproof", c.steps[j.target].ID)
	}
	assume := c.steps[j.sub.start].Formula
	if !assume.Equal(wantAssume) {
		return fail(s, CodeSubproofMismatch,
			"the cited subproof assumes %s, want %s", pp(assume), pp(wantAssume))
	}
	last := c.steps[j.sub.end].Formula
	if !last.Equal(wantLast) {
		return fail(s, CodeSubproofConclusionMismatch,
			"the cited subproof ends with %s, want %s", pp(last), pp(wantLast))
	}
	return nil
}

func (c *checker) checkAndIntro(s Step, justs []justification) *ValidationError {
	e, ok := s.Formula.(logic.And)
	if !ok {
		return fail(s, CodeWrongConclusionType, "%s is not a conjunction", pp(s.Formula))
	}
	left := justs[0].formula(c.steps)
	right := justs[1].formula(c.steps)
	if !e.Left.Equal(left) || !e.Right.Equal(right) {
		return fail(s, CodeConclusionMismatch,
			"%s is not the conjunction of %s and %s", pp(s.Formula), pp(left), pp(right))
	}
	return nil
}

func (c *checker) checkAndElim(s Step, justs []justification) *ValidationError {
	conj, ok := justs[0].formula(c.steps).(logic.And)
	if !ok {
		return fail(s, CodeWrongPremiseType,
			"%s is not a conjunction", pp(justs[0].formula(c.steps)))
	}
	want := conj.Left
	if s.Rule == RuleAndElimR {
		want = conj.Right
	}
	if !s.Formula.Equal(want) {
		return fail(s, CodeConclusionMismatch,
			"%s is not the expected conjunct %s", pp(s.Formula), pp(want))
	}
	return nil
}

func (c *checker) checkOrIntro(s Step, justs []justification) *ValidationError {
	e, ok := s.Formula.(logic.Or)
	if !ok {
		return fail(s, CodeWrongConclusionType, "%s is not a disjunction", pp(s.Formula))
	}
	side := e.Left
	if s.Rule == RuleOrIntroR {
		side = e.Right
	}
	if !side.Equal(justs[0].formula(c.steps)) {
		return fail(s, CodeConclusionMismatch,
			"%s does not appear as the introduced disjunct of %s",
			pp(justs[0].formula(c.steps)), pp(s.Formula))
	}
	return nil
}

func (c *checker) checkOrElim(s Step, justs []justification) *ValidationError {
	disj, ok := justs[0].formula(c.steps).(logic.Or)
	if !ok {
		return fail(s, CodeWrongPremiseType,
			"%s is not a disjunction", pp(justs[0].formula(c.steps)))
	}
	if err := c.checkSubproof(s, justs[1], disj.Left, s.Formula); err != nil {
		return err
	}
	return c.checkSubproof(s, justs[2], disj.Right, s.Formula)
}

func (c *checker) checkImpliesIntro(s Step, justs []justification) *ValidationError {
	e, ok := s.Formula.(logic.Implies)
	if !ok {
		return fail(s, CodeWrongConclusionType, "%s is not a conditional", pp(s.Formula))
	}
	return c.checkSubproof(s, justs[0], e.Left, e.Right)
}

// checkImpliesElim accepts modus ponens with the conditional and the
// antecedent in either order.
func (c *checker) checkImpliesElim(s Step, justs []justification) *ValidationError {
	a := justs[0].formula(c.steps)
	b := justs[1].formula(c.steps)
	sawConditional := false
	sawAntecedent := false
	for _, pair := range [2][2]logic.Formula{{a, b}, {b, a}} {
		cond, ok := pair[0].(logic.Implies)
		if !ok {
			continue
		}
		sawConditional = true
		if !cond.Left.Equal(pair[1]) {
			continue
		}
		sawAntecedent = true
		if cond.Right.Equal(s.Formula) {
			return nil
		}
	}
	switch {
	case sawAntecedent:
		return fail(s, CodeConclusionMismatch,
			"%s is not the consequent of the cited conditional", pp(s.Formula))
	case sawConditional:
		return fail(s, CodeInvalidJustification,
			"the cited antecedent does not match the conditional")
	default:
		return fail(s, CodeWrongPremiseType, "neither justification is a conditional")
	}
}

func (c *checker) checkNotIntro(s Step, justs []justification) *ValidationError {
	e, ok := s.Formula.(logic.Not)
	if !ok {
		return fail(s, CodeWrongConclusionType, "%s is not a negation", pp(s.Formula))
	}
	return c.checkSubproof(s, justs[0], e.Operand, logic.Bottom{})
}

func (c *checker) checkNotElim(s Step, justs []justification) *ValidationError {
	outer, ok := justs[0].formula(c.steps).(logic.Not)
	if !ok {
		return fail(s, CodeWrongPremiseType,
			"%s is not a double negation", pp(justs[0].formula(c.steps)))
	}
	inner, ok := outer.Operand.(logic.Not)
	if !ok {
		return fail(s, CodeWrongPremiseType,
			"%s is not a double negation", pp(justs[0].formula(c.steps)))
	}
	if !inner.Operand.Equal(s.Formula) {
		return fail(s, CodeConclusionMismatch,
			"%s is not %s with the double negation removed",
			pp(s.Formula), pp(justs[0].formula(c.steps)))
	}
	return nil
}

func (c *checker) checkIffIntro(s Step, justs []justification) *ValidationError {
	e, ok := s.Formula.(logic.Iff)
	if !ok {
		return fail(s, CodeWrongConclusionType, "%s is not a biconditional", pp(s.Formula))
	}
	forward := logic.Implies{Left: e.Left, Right: e.Right}
	backward := logic.Implies{Left: e.Right, Right: e.Left}
	a := justs[0].formula(c.steps)
	b := justs[1].formula(c.steps)
	if (a.Equal(forward) && b.Equal(backward)) || (a.Equal(backward) && b.Equal(forward)) {
		return nil
	}
	return fail(s, CodeInvalidJustification,
		"justifications are not the two directions %s and %s", pp(forward), pp(backward))
}

// checkIffElim accepts the biconditional and the known side in either
// order.
func (c *checker) checkIffElim(s Step, justs []justification) *ValidationError {
	a := justs[0].formula(c.steps)
	b := justs[1].formula(c.steps)
	sawBiconditional := false
	sawSide := false
	for _, pair := range [2][2]logic.Formula{{a, b}, {b, a}} {
		iff, ok := pair[0].(logic.Iff)
		if !ok {
			continue
		}
		sawBiconditional = true
		if pair[1].Equal(iff.Left) {
			sawSide = true
			if s.Formula.Equal(iff.Right) {
				return nil
			}
		}
		if pair[1].Equal(iff.Right) {
			sawSide = true
			if s.Formula.Equal(iff.Left) {
				return nil
			}
		}
	}
	switch {
	case sawSide:
		return fail(s, CodeConclusionMismatch,
			"%s is not the other side of the cited biconditional", pp(s.Formula))
	case sawBiconditional:
		return fail(s, CodeInvalidJustification,
			"the cited formula is not a side of the biconditional")
	default:
		return fail(s, CodeWrongPremiseType, "neither justification is a biconditional")
	}
}

func (c *checker) checkBottomElim(s Step, justs []justification) *ValidationError {
	if !justs[0].formula(c.steps).Equal(logic.Bottom{}) {
		return fail(s, CodeWrongPremiseType,
			"%s is not %s", pp(justs[0].formula(c.steps)), pp(logic.Bottom{}))
	}
	return nil
}

func (c *checker) checkRAA(s Step, justs []justification) *ValidationError {
	return c.checkSubproof(s, justs[0], logic.Not{Operand: s.Formula}, logic.Bottom{})
}
