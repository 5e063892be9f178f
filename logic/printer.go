package logic

import (
	"strings"
)

// Mode selects the connective lexicon used when printing a formula.
type Mode int

const (
	// UTF8 prints the logical symbols (¬, ∧, ∨, →, ↔, ⊥, ⊢).
	UTF8 Mode = iota
	// ASCII prints keyboard-friendly digraphs (~, /\, \/, ->, <->, _|_, |-).
	ASCII
)

type lexicon struct {
	not, and, or, implies, iff, bottom, turnstile string
}

var lexicons = [...]lexicon{
	UTF8:  {"¬", "∧", "∨", "→", "↔", "⊥", "⊢"},
	ASCII: {"~", "/\\", "\\/", "->", "<->", "_|_", "|-"},
}

// Precedence ranks, doubled so that a half-unit associativity bias stays
// integral. A child is parenthesized when its rank is strictly below the
// rank handed down by its parent; recursing into the side that must not
// re-associate passes the parent's own rank plus one.
const (
	rankIff     = 2
	rankImplies = 4
	rankOr      = 6
	rankAnd     = 8
	rankNot     = 10
	rankAtom    = 12
)

func rank(f Formula) int {
	switch f.(type) {
	case Iff:
		return rankIff
	case Implies:
		return rankImplies
	case Or:
		return rankOr
	case And:
		return rankAnd
	case Not:
		return rankNot
	default:
		return rankAtom
	}
}

// Print renders f in the given mode with the minimal parenthesization that
// reparses to a structurally equal formula.
func Print(f Formula, mode Mode) string {
	var sb strings.Builder
	render(&sb, f, 0, mode)
	return sb.String()
}

func render(sb *strings.Builder, f Formula, parent int, mode Mode) {
	lex := lexicons[mode]
	wrap := rank(f) < parent
	if wrap {
		sb.WriteByte('(')
	}
	switch f := f.(type) {
	case Var:
		sb.WriteString(f.Name)
	case Bottom:
		sb.WriteString(lex.bottom)
	case Not:
		sb.WriteString(lex.not)
		render(sb, f.Operand, rankNot, mode)
	case And:
		render(sb, f.Left, rankAnd, mode)
		sb.WriteString(" " + lex.and + " ")
		render(sb, f.Right, rankAnd+1, mode)
	case Or:
		render(sb, f.Left, rankOr, mode)
		sb.WriteString(" " + lex.or + " ")
		render(sb, f.Right, rankOr+1, mode)
	case Implies:
		render(sb, f.Left, rankImplies+1, mode)
		sb.WriteString(" " + lex.implies + " ")
		render(sb, f.Right, rankImplies, mode)
	case Iff:
		render(sb, f.Left, rankIff, mode)
		sb.WriteString(" " + lex.iff + " ")
		render(sb, f.Right, rankIff+1, mode)
	}
	if wrap {
		sb.WriteByte(')')
	}
}

// PrintSequent renders a sequent: the premises joined by commas, the
// turnstile, then the conclusion. With no premises the turnstile leads,
// preceded by a single space.
func PrintSequent(premises []Formula, conclusion Formula, mode Mode) string {
	lex := lexicons[mode]
	parts := make([]string, len(premises))
	for i, p := range premises {
		parts[i] = Print(p, mode)
	}
	return strings.Join(parts, ", ") + " " + lex.turnstile + " " + Print(conclusion, mode)
}
