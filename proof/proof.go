package proof

import (
	"fmt"

	"github.com/gofitch/gofitch/logic"
)

// A Rule names an inference rule. The values are stable wire identifiers.
type Rule string

const (
	RuleAssumption   Rule = "assumption"
	RuleAndIntro     Rule = "and_intro"
	RuleAndElimL     Rule = "and_elim_l"
	RuleAndElimR     Rule = "and_elim_r"
	RuleOrIntroL     Rule = "or_intro_l"
	RuleOrIntroR     Rule = "or_intro_r"
	RuleOrElim       Rule = "or_elim"
	RuleImpliesIntro Rule = "implies_intro"
	RuleImpliesElim  Rule = "implies_elim"
	RuleNotIntro     Rule = "not_intro"
	RuleNotElim      Rule = "not_elim"
	RuleIffIntro     Rule = "iff_intro"
	RuleIffElim      Rule = "iff_elim"
	RuleBottomElim   Rule = "bottom_elim"
	RuleRAA          Rule = "raa"
	RuleTheorem      Rule = "theorem"
)

// A Step is one line of a Fitch-style proof. ID is an opaque identifier,
// unique within the proof and chosen by the caller; the checker never
// invents or rewrites identifiers. Depth is the subproof nesting level,
// zero for the outer proof. Justifications reference earlier steps by ID;
// for rules that consume a subproof, the reference is the ID of the
// assumption that opens it.
type Step struct {
	ID             string
	Formula        logic.Formula
	Rule           Rule
	Justifications []string
	Depth          int
	TheoremID      string
}

// A Theorem is a previously proven sequent that proofs may cite through
// the "theorem" rule.
type Theorem struct {
	ID         string
	Premises   []logic.Formula
	Conclusion logic.Formula
}

// A Library holds theorems addressable by ID.
type Library map[string]Theorem

// NewLibrary builds a library from the given theorems. Later duplicates
// of an ID win.
func NewLibrary(theorems ...Theorem) Library {
	lib := make(Library, len(theorems))
	for _, thm := range theorems {
		lib[thm.ID] = thm
	}
	return lib
}

// A Code is a stable wire identifier for a checker diagnostic.
type Code string

const (
	CodeEmptyProof                 Code = "EMPTY_PROOF"
	CodeInsufficientJustifications Code = "INSUFFICIENT_JUSTIFICATIONS"
	CodeTooManyJustifications      Code = "TOO_MANY_JUSTIFICATIONS"
	CodeJustificationNotFound      Code = "JUSTIFICATION_NOT_FOUND"
	CodeInaccessibleJustification  Code = "INACCESSIBLE_JUSTIFICATION"
	CodeWrongPremiseType           Code = "WRONG_PREMISE_TYPE"
	CodeWrongConclusionType        Code = "WRONG_CONCLUSION_TYPE"
	CodeConclusionMismatch         Code = "CONCLUSION_MISMATCH"
	CodeInvalidSubproof            Code = "INVALID_SUBPROOF"
	CodeSubproofMismatch           Code = "SUBPROOF_MISMATCH"
	CodeSubproofConclusionMismatch Code = "SUBPROOF_CONCLUSION_MISMATCH"
	CodeInvalidJustification       Code = "INVALID_JUSTIFICATION"
	CodeMissingTheoremID           Code = "MISSING_THEOREM_ID"
	CodeTheoremNotFound            Code = "THEOREM_NOT_FOUND"
	CodeTheoremMismatch            Code = "THEOREM_MISMATCH"
	CodeUnknownRule                Code = "UNKNOWN_RULE"
)

// A ValidationError describes why a step was rejected. At most one error
// is reported per step and invocation.
type ValidationError struct {
	StepID  string
	Message string
	Code    Code
}

func (e ValidationError) Error() string {
	if e.StepID == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("step %s: %s: %s", e.StepID, e.Code, e.Message)
}

// A Result reports the outcome of checking a proof. Valid and Complete
// are independent: a proof may be error-free without reaching the goal,
// and may reach the goal while containing bad steps.
type Result struct {
	Valid    bool
	Complete bool
	Errors   []ValidationError
}
