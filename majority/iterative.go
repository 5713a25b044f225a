package majority

// frame is one pending subproblem on the explicit stack.
type frame struct {
	key  Key
	next int   // next candidate index to try
	best entry // best candidate so far
}

// solveIterative is solveRecursive driven by an explicit stack of frames.
// Candidates are visited in the same order, so results and tie-breaking are
// identical.
//
// Loop invariant: the top frame's children for candidates [key.From, next)
// have all been folded into best.
func (e *engine) solveIterative(remaining, from int) (entry, error) {
	if got, ok := e.resolve(remaining, from); ok {
		return got, nil
	}
	if err := e.budget.tick(); err != nil {
		return entry{}, err
	}

	stack := make([]frame, 1, e.n+1)
	stack[0] = frame{key: Key{Remaining: remaining, From: from}, next: from}

	for {
		top := &stack[len(stack)-1]

		// All candidates tried: memoise and hand the result to the parent.
		if top.next == e.n {
			done := top.best
			e.memo[top.key] = done
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return done, nil
			}
			parent := &stack[len(stack)-1]
			parent.best = e.extend(parent.best, parent.next, done)
			parent.next++

			continue
		}

		c := top.next
		childRem := top.key.Remaining - e.regions[c].Coarse
		if got, ok := e.resolve(childRem, c+1); ok {
			top.best = e.extend(top.best, c, got)
			top.next++

			continue
		}
		if err := e.budget.tick(); err != nil {
			return entry{}, err
		}
		stack = append(stack, frame{key: Key{Remaining: childRem, From: c + 1}, next: c + 1})
	}
}
