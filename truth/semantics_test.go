package truth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofitch/gofitch/logic"
)

func TestEquivalent(t *testing.T) {
	cases := []struct {
		a, b     string
		expected bool
	}{
		{"P -> Q", "~P \\/ Q", true},
		{"~(P /\\ Q)", "~P \\/ ~Q", true},
		{"P <-> Q", "(P -> Q) /\\ (Q -> P)", true},
		{"P", "Q", false},
		{"P -> Q", "Q -> P", false},
		{"_|_", "P /\\ ~P", true},
	}
	for _, c := range cases {
		got, err := Equivalent(mustParse(t, c.a), mustParse(t, c.b))
		require.NoError(t, err)
		assert.Equal(t, c.expected, got, "%q ≡ %q", c.a, c.b)
	}
}

func TestSatisfiable(t *testing.T) {
	sat, err := Satisfiable(nil)
	require.NoError(t, err)
	assert.True(t, sat, "the empty list is satisfiable")

	sat, err = Satisfiable([]logic.Formula{
		mustParse(t, "P \\/ Q"),
		mustParse(t, "~P"),
	})
	require.NoError(t, err)
	assert.True(t, sat)

	sat, err = Satisfiable([]logic.Formula{
		mustParse(t, "P"),
		mustParse(t, "~P"),
	})
	require.NoError(t, err)
	assert.False(t, sat)
}

func TestEntails(t *testing.T) {
	cases := []struct {
		premises   []string
		conclusion string
		expected   bool
	}{
		{[]string{"P", "P -> Q"}, "Q", true},
		{[]string{"P"}, "P \\/ Q", true},
		{[]string{"P \\/ Q"}, "P", false},
		{[]string{}, "P -> P", true},
		{[]string{}, "P", false},
		{[]string{"P", "~P"}, "Q", true}, // explosion
		{[]string{"P -> Q", "Q -> R"}, "P -> R", true},
	}
	for _, c := range cases {
		premises := make([]logic.Formula, len(c.premises))
		for i, s := range c.premises {
			premises[i] = mustParse(t, s)
		}
		got, err := Entails(premises, mustParse(t, c.conclusion))
		require.NoError(t, err)
		assert.Equal(t, c.expected, got, "%v ⊨ %s", c.premises, c.conclusion)

		// Entailment holds exactly when no counterexample exists.
		cx, err := Counterexample(premises, mustParse(t, c.conclusion))
		require.NoError(t, err)
		assert.Equal(t, c.expected, cx == nil, "counterexample for %v ⊨ %s", c.premises, c.conclusion)
	}
}

func TestCounterexampleOrder(t *testing.T) {
	// For P ∨ Q ⊭ P the first falsifying assignment in enumeration
	// order is P=false, Q=true.
	cx, err := Counterexample([]logic.Formula{mustParse(t, "P \\/ Q")}, mustParse(t, "P"))
	require.NoError(t, err)
	require.NotNil(t, cx)
	assert.Equal(t, map[string]bool{"P": false, "Q": true}, cx)
}

func TestValidateRows(t *testing.T) {
	f := mustParse(t, "P /\\ Q")
	order := []string{"P", "Q"}
	rows := []SubmittedRow{
		{Inputs: []bool{true, true}, Result: true},
		{Inputs: []bool{true, false}, Result: true}, // wrong
		{Inputs: []bool{false, true}, Result: false},
		{Inputs: []bool{false, false}, Result: true}, // wrong
	}
	mismatches, err := ValidateRows(f, order, rows)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, mismatches)

	mismatches, err = ValidateRows(f, order, rows[:1])
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	// Submitted column order need not be sorted.
	mismatches, err = ValidateRows(mustParse(t, "P -> Q"), []string{"Q", "P"},
		[]SubmittedRow{{Inputs: []bool{false, true}, Result: false}})
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	_, err = ValidateRows(f, []string{"P"}, nil)
	assert.Error(t, err, "order missing a variable of the formula")

	_, err = ValidateRows(f, order, []SubmittedRow{{Inputs: []bool{true}, Result: true}})
	assert.Error(t, err, "row width must match the order")
}
