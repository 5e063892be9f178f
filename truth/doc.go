// Package truth decides the semantics of propositional formulas by
// exhaustive enumeration: truth tables, tautology and contradiction
// classification, equivalence, joint satisfiability, entailment and
// counterexamples.
//
// Every operation enumerates all 2^n assignments over the variables
// involved; no SAT-style shortcuts are attempted. The number of distinct
// variables per call is capped at MaxVars.
package truth
