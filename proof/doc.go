// Package proof checks natural-deduction proofs in the Kalish–Montague /
// Fitch style. A proof is a flat list of steps, each carrying a formula,
// a rule, references to earlier steps and a nesting depth; subproof
// boundaries are inferred from the depth column rather than stored.
//
// Checking is total and accumulative: ill-formed proofs produce
// diagnostics, never panics, and every step is examined even when earlier
// steps fail. A step that cites a rejected step is not failed again for
// the citation alone.
package proof
