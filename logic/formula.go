package logic

import (
	"fmt"
	"sort"
)

// A Formula is a classical propositional formula.
// Formulas are immutable values: once built, a formula is never modified,
// so they can safely be shared between goroutines.
type Formula interface {
	// Eval returns the truth value of the formula under the given
	// assignment. It panics if the assignment lacks a binding for one of
	// the formula's variables: an incomplete assignment is a caller bug,
	// not a recoverable condition.
	Eval(model map[string]bool) bool
	// Equal reports whether the two formulas are structurally identical.
	Equal(other Formula) bool
	// String renders the formula with UTF-8 connectives and minimal
	// parentheses.
	String() string

	vars(seen map[string]struct{})
}

// Var is a propositional variable.
type Var struct {
	Name string
}

func (v Var) Eval(model map[string]bool) bool {
	b, ok := model[v.Name]
	if !ok {
		panic(fmt.Errorf("no binding for variable %s in model", v.Name))
	}
	return b
}

func (v Var) Equal(other Formula) bool {
	o, ok := other.(Var)
	return ok && v.Name == o.Name
}

func (v Var) String() string { return Print(v, UTF8) }

func (v Var) vars(seen map[string]struct{}) {
	seen[v.Name] = struct{}{}
}

// Bottom is the contradiction constant, false under every assignment.
type Bottom struct{}

func (Bottom) Eval(map[string]bool) bool { return false }

func (Bottom) Equal(other Formula) bool {
	_, ok := other.(Bottom)
	return ok
}

func (b Bottom) String() string { return Print(b, UTF8) }

func (Bottom) vars(map[string]struct{}) {}

// Not negates its operand.
type Not struct {
	Operand Formula
}

func (n Not) Eval(model map[string]bool) bool {
	return !n.Operand.Eval(model)
}

func (n Not) Equal(other Formula) bool {
	o, ok := other.(Not)
	return ok && n.Operand.Equal(o.Operand)
}

func (n Not) String() string { return Print(n, UTF8) }

func (n Not) vars(seen map[string]struct{}) {
	n.Operand.vars(seen)
}

// And is the conjunction of two subformulas.
type And struct {
	Left, Right Formula
}

func (a And) Eval(model map[string]bool) bool {
	return a.Left.Eval(model) && a.Right.Eval(model)
}

func (a And) Equal(other Formula) bool {
	o, ok := other.(And)
	return ok && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}

func (a And) String() string { return Print(a, UTF8) }

func (a And) vars(seen map[string]struct{}) {
	a.Left.vars(seen)
	a.Right.vars(seen)
}

// Or is the disjunction of two subformulas.
type Or struct {
	Left, Right Formula
}

func (o Or) Eval(model map[string]bool) bool {
	return o.Left.Eval(model) || o.Right.Eval(model)
}

func (o Or) Equal(other Formula) bool {
	o2, ok := other.(Or)
	return ok && o.Left.Equal(o2.Left) && o.Right.Equal(o2.Right)
}

func (o Or) String() string { return Print(o, UTF8) }

func (o Or) vars(seen map[string]struct{}) {
	o.Left.vars(seen)
	o.Right.vars(seen)
}

// Implies is the material conditional from Left to Right.
type Implies struct {
	Left, Right Formula
}

func (i Implies) Eval(model map[string]bool) bool {
	return !i.Left.Eval(model) || i.Right.Eval(model)
}

func (i Implies) Equal(other Formula) bool {
	o, ok := other.(Implies)
	return ok && i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}

func (i Implies) String() string { return Print(i, UTF8) }

func (i Implies) vars(seen map[string]struct{}) {
	i.Left.vars(seen)
	i.Right.vars(seen)
}

// Iff is the biconditional between two subformulas.
type Iff struct {
	Left, Right Formula
}

func (i Iff) Eval(model map[string]bool) bool {
	return i.Left.Eval(model) == i.Right.Eval(model)
}

func (i Iff) Equal(other Formula) bool {
	o, ok := other.(Iff)
	return ok && i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}

func (i Iff) String() string { return Print(i, UTF8) }

func (i Iff) vars(seen map[string]struct{}) {
	i.Left.vars(seen)
	i.Right.vars(seen)
}

// Equal reports whether two formulas are structurally identical.
// Variable names are compared case-sensitively.
func Equal(a, b Formula) bool {
	return a.Equal(b)
}

// Variables returns the names of the variables occurring in f, sorted in
// ascending code-point order, without duplicates.
func Variables(f Formula) []string {
	seen := make(map[string]struct{})
	f.vars(seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
