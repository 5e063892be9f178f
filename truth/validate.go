package truth

import (
	"fmt"

	"github.com/gofitch/gofitch/logic"
)

// A SubmittedRow is one line of a hand-written truth table: the input
// values, aligned with an explicit variable order, and the claimed result.
type SubmittedRow struct {
	Inputs []bool
	Result bool
}

// ValidateRows grades a hand-written truth table for f. The order slice
// gives the meaning of each Inputs column; it must cover every variable
// of f. The returned slice holds the indices of the rows whose claimed
// result disagrees with the evaluation of f, in submitted order.
func ValidateRows(f logic.Formula, order []string, rows []SubmittedRow) ([]int, error) {
	covered := make(map[string]struct{}, len(order))
	for _, name := range order {
		covered[name] = struct{}{}
	}
	for _, name := range logic.Variables(f) {
		if _, ok := covered[name]; !ok {
			return nil, fmt.Errorf("variable %s of the formula is missing from the column order", name)
		}
	}
	var mismatches []int
	for i, row := range rows {
		if len(row.Inputs) != len(order) {
			return nil, fmt.Errorf("row %d has %d inputs, want %d", i, len(row.Inputs), len(order))
		}
		model := make(map[string]bool, len(order))
		for j, name := range order {
			model[name] = row.Inputs[j]
		}
		if f.Eval(model) != row.Result {
			mismatches = append(mismatches, i)
		}
	}
	return mismatches, nil
}
