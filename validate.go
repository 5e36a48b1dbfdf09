package dfamin

import (
	"maps"
	"slices"
)

// validate checks every structural invariant of def and reports the first one
// that is broken. Checks run in a fixed order over the declared state and
// alphabet order, so the reported violation is reproducible.
func validate(def Definition) error {
	states := make(map[State]struct{}, len(def.States))
	for _, s := range def.States {
		if _, ok := states[s]; ok {
			return invalid(InvariantDistinctStates, s, "", "state %q listed more than once", s)
		}
		states[s] = struct{}{}
	}

	symbols := make(map[Symbol]struct{}, len(def.Alphabet))
	for _, c := range def.Alphabet {
		if _, ok := symbols[c]; ok {
			return invalid(InvariantDistinctSymbols, "", c, "symbol %q listed more than once", c)
		}
		symbols[c] = struct{}{}
	}

	// The empty automaton has no state to start from.
	if len(def.States) > 0 {
		if _, ok := states[def.Initial]; !ok {
			return invalid(InvariantInitialState, def.Initial, "", "initial state %q is not a state", def.Initial)
		}
	}

	for _, f := range def.Finals {
		if _, ok := states[f]; !ok {
			return invalid(InvariantFinalStates, f, "", "final state %q is not a state", f)
		}
	}

	for _, from := range slices.Sorted(maps.Keys(def.Transitions)) {
		if _, ok := states[from]; !ok {
			return invalid(InvariantTransitionDomain, from, "", "transitions leave unknown state %q", from)
		}
		for _, c := range slices.Sorted(maps.Keys(def.Transitions[from])) {
			if _, ok := symbols[c]; !ok {
				return invalid(InvariantTransitionDomain, from, c, "transition from %q on unknown symbol %q", from, c)
			}
		}
	}

	for _, s := range def.States {
		row := def.Transitions[s]
		for _, c := range def.Alphabet {
			to, ok := row[c]
			if !ok {
				return invalid(InvariantTransitionTotal, s, c, "no transition from %q on %q", s, c)
			}
			if _, ok := states[to]; !ok {
				return invalid(InvariantTransitionRange, s, c, "transition from %q on %q targets unknown state %q", s, c, to)
			}
		}
	}

	return nil
}
