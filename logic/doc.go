// Package logic implements the syntax of classical propositional logic:
// an abstract syntax tree for formulas, a lexer and parser for the usual
// ASCII and UTF-8 connective spellings, and a printer that emits the
// minimal parenthesization.
//
// The connectives, from lowest to highest priority, are the biconditional
// ("<->" or "↔"), the implication ("->" or "→"), the disjunction ("\/",
// "|" or "∨"), the conjunction ("/\", "&" or "∧") and the negation ("~"
// or "¬"). "_|_" or "⊥" denotes the contradiction constant. Both
// spellings may be mixed within a single input:
//
//	f, err := logic.Parse("P /\\ Q -> ¬R")
//
// parses to the same tree as "P ∧ Q → ¬R". For every formula f and mode
// m, logic.Parse(logic.Print(f, m)) succeeds and yields a formula
// structurally equal to f.
package logic
