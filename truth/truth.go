package truth

import (
	"fmt"

	"github.com/gofitch/gofitch/logic"
)

// MaxVars bounds the number of distinct variables a single enumeration
// will accept. Tables grow as 2^n rows, so 16 variables (65536 rows)
// keeps worst-case work within interactive reach.
const MaxVars = 16

// A Row is one line of a truth table: a complete assignment and the value
// of the formula under it.
type Row struct {
	Inputs map[string]bool
	Result bool
}

// A Table is the full truth table of a formula.
type Table struct {
	Formula   logic.Formula
	Variables []string
	Rows      []Row

	IsTautology     bool
	IsContradiction bool
	IsSatisfiable   bool
}

// New computes the truth table of f. Variables appear in ascending
// code-point order; row 0 assigns true to every variable and the last row
// assigns false to every variable. It fails if f has more than MaxVars
// variables.
func New(f logic.Formula) (*Table, error) {
	vars := logic.Variables(f)
	if len(vars) > MaxVars {
		return nil, fmt.Errorf("formula has %d variables, more than the %d supported", len(vars), MaxVars)
	}
	t := &Table{
		Formula:         f,
		Variables:       vars,
		Rows:            make([]Row, 0, 1<<len(vars)),
		IsTautology:     true,
		IsContradiction: true,
	}
	for i := 0; i < 1<<len(vars); i++ {
		model := assignment(vars, i)
		result := f.Eval(model)
		t.Rows = append(t.Rows, Row{Inputs: model, Result: result})
		if result {
			t.IsContradiction = false
		} else {
			t.IsTautology = false
		}
	}
	t.IsSatisfiable = !t.IsContradiction
	return t, nil
}

// assignment builds the model for the given row index. Variable j is true
// exactly when bit n-1-j of the index is zero, so the first variable
// flips slowest and row 0 is all-true.
func assignment(vars []string, row int) map[string]bool {
	n := len(vars)
	model := make(map[string]bool, n)
	for j, name := range vars {
		model[name] = row&(1<<(n-1-j)) == 0
	}
	return model
}

// Class partitions formulas by their truth-table column.
type Class int

const (
	Contingent Class = iota
	Tautology
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// Class returns the classification of the table's formula.
func (t *Table) Class() Class {
	switch {
	case t.IsTautology:
		return Tautology
	case t.IsContradiction:
		return Contradiction
	default:
		return Contingent
	}
}
