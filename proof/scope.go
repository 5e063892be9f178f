package proof

// A scope is one subproof: the contiguous run of steps from its opening
// assumption to its last interior step, inclusive.
type scope struct {
	start int
	end   int
	depth int
}

func (sc scope) contains(i int) bool {
	return sc.start <= i && i <= sc.end
}

// computeScopes infers the subproof structure from the depth column.
// Walking the steps in order with a stack of open scopes:
//
//   - an assumption whose depth rises above the previous step's, or that
//     sits at the same nonzero depth as the previous step (a sibling),
//     opens a scope;
//   - a step at depth d closes every open scope deeper than d, and a
//     sibling assumption also closes the scope it replaces;
//   - scopes still open after the last step close there. Each closed
//     scope's end is the index of its last interior step.
func computeScopes(steps []Step) []scope {
	var closed []scope
	var open []scope
	prev := 0
	for i, s := range steps {
		d := s.Depth
		for len(open) > 0 && open[len(open)-1].depth > d {
			sc := open[len(open)-1]
			open = open[:len(open)-1]
			sc.end = i - 1
			closed = append(closed, sc)
		}
		sibling := s.Rule == RuleAssumption && d > 0 && d == prev
		if sibling && len(open) > 0 && open[len(open)-1].depth == d {
			sc := open[len(open)-1]
			open = open[:len(open)-1]
			sc.end = i - 1
			closed = append(closed, sc)
		}
		if s.Rule == RuleAssumption && (d > prev || sibling) {
			open = append(open, scope{start: i, end: -1, depth: d})
		}
		prev = d
	}
	for len(open) > 0 {
		sc := open[len(open)-1]
		open = open[:len(open)-1]
		sc.end = len(steps) - 1
		closed = append(closed, sc)
	}
	return closed
}

// stepAccessible reports whether the step at index target may be cited
// from index from: every subproof containing the target must also contain
// the citing step.
func stepAccessible(scopes []scope, target, from int) bool {
	for _, sc := range scopes {
		if sc.contains(target) && !sc.contains(from) {
			return false
		}
	}
	return true
}

// subproofAccessible reports whether the subproof own may be cited as a
// whole from index from. The subproof's own interval is exempt; every
// scope strictly enclosing it must contain the citing step.
func subproofAccessible(scopes []scope, own scope, from int) bool {
	for _, sc := range scopes {
		if sc == own {
			continue
		}
		if sc.contains(own.start) && !sc.contains(from) {
			return false
		}
	}
	return true
}
