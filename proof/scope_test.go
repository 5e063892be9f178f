package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofitch/gofitch/logic"
)

// depthSteps builds a proof skeleton from (rule, depth) pairs; formulas
// are irrelevant to scope inference.
func depthSteps(rules []Rule, depths []int) []Step {
	steps := make([]Step, len(rules))
	for i := range rules {
		steps[i] = Step{
			ID:      string(rune('a' + i)),
			Formula: logic.Var{Name: "P"},
			Rule:    rules[i],
			Depth:   depths[i],
		}
	}
	return steps
}

func TestComputeScopesNested(t *testing.T) {
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAssumption, RuleAndIntro, RuleAndIntro},
		[]int{0, 1, 1, 0},
	)
	scopes := computeScopes(steps)
	require.Len(t, scopes, 1)
	assert.Equal(t, scope{start: 1, end: 2, depth: 1}, scopes[0])
}

func TestComputeScopesSibling(t *testing.T) {
	// Two sibling subproofs at depth 1: the second assumption closes the
	// first scope and opens its own.
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAndIntro, RuleAssumption, RuleAndIntro, RuleOrElim},
		[]int{1, 1, 1, 1, 0},
	)
	scopes := computeScopes(steps)
	require.Len(t, scopes, 2)
	assert.Contains(t, scopes, scope{start: 0, end: 1, depth: 1})
	assert.Contains(t, scopes, scope{start: 2, end: 3, depth: 1})
}

func TestComputeScopesDangling(t *testing.T) {
	// A subproof left open closes at the last step.
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAssumption, RuleAndIntro},
		[]int{0, 1, 1},
	)
	scopes := computeScopes(steps)
	require.Len(t, scopes, 1)
	assert.Equal(t, scope{start: 1, end: 2, depth: 1}, scopes[0])
}

func TestComputeScopesDeeplyNested(t *testing.T) {
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAssumption, RuleAndIntro, RuleImpliesIntro, RuleImpliesIntro},
		[]int{1, 2, 2, 1, 0},
	)
	scopes := computeScopes(steps)
	require.Len(t, scopes, 2)
	assert.Contains(t, scopes, scope{start: 1, end: 2, depth: 2})
	assert.Contains(t, scopes, scope{start: 0, end: 3, depth: 1})
}

func TestStepAccessible(t *testing.T) {
	// 0: outer, 1-2: closed subproof, 3: outer again.
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAssumption, RuleAndIntro, RuleAndIntro},
		[]int{0, 1, 1, 0},
	)
	scopes := computeScopes(steps)
	assert.True(t, stepAccessible(scopes, 0, 3), "outer steps stay accessible")
	assert.False(t, stepAccessible(scopes, 1, 3), "closed subproof is sealed")
	assert.False(t, stepAccessible(scopes, 2, 3), "closed subproof is sealed")
	assert.True(t, stepAccessible(scopes, 1, 2), "inside its own subproof")
	assert.True(t, stepAccessible(scopes, 0, 2), "outer reachable from inside")
}

func TestSubproofAccessible(t *testing.T) {
	// A closed subproof is citable as a whole right after it closes, but
	// not from outside the subproof that encloses it.
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAssumption, RuleAndIntro, RuleImpliesIntro, RuleImpliesIntro},
		[]int{1, 2, 2, 1, 0},
	)
	scopes := computeScopes(steps)
	inner := scope{start: 1, end: 2, depth: 2}
	outer := scope{start: 0, end: 3, depth: 1}
	assert.True(t, subproofAccessible(scopes, inner, 3), "citable from the enclosing subproof")
	assert.False(t, subproofAccessible(scopes, inner, 4), "sealed once the enclosing subproof closes")
	assert.True(t, subproofAccessible(scopes, outer, 4), "top-level subproof citable at depth 0")
}

// Dropping a trailing step must not change the accessibility of earlier
// steps from earlier positions.
func TestAccessibilityDeterminism(t *testing.T) {
	steps := depthSteps(
		[]Rule{RuleAssumption, RuleAssumption, RuleAndIntro, RuleAssumption, RuleAndIntro, RuleOrElim},
		[]int{0, 1, 1, 1, 1, 0},
	)
	full := computeScopes(steps)
	trimmed := computeScopes(steps[:len(steps)-1])
	for c := 0; c < len(steps)-1; c++ {
		for target := 0; target <= c; target++ {
			assert.Equal(t,
				stepAccessible(trimmed, target, c),
				stepAccessible(full, target, c),
				"accessibility of %d from %d changed when the trailing step was removed", target, c)
		}
	}
}
