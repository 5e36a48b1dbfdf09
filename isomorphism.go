package dfamin

import "slices"

// Isomorphic Returns true if the parts of a and b reachable from their initial
// states are equal up to a renaming of states. Both automata must use the same
// alphabet in the same order.
func Isomorphic(a, b *DFA) bool {
	if !slices.Equal(a.alphabet, b.alphabet) {
		return false
	}
	if a.start() < 0 || b.start() < 0 {
		return a.start() < 0 && b.start() < 0
	}

	// Pair states breadth-first from the initial states; a bijection must
	// map every discovered pair consistently in both directions.
	forward := make(map[int]int)
	backward := make(map[int]int)
	forward[a.initial] = b.initial
	backward[b.initial] = a.initial

	workList := []int{a.initial}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		t := forward[s]

		if a.final(s) != b.final(t) {
			return false
		}

		for c := range a.alphabet {
			sd, td := a.step(s, c), b.step(t, c)
			mapped, seen := forward[sd]
			if seen {
				if mapped != td {
					return false
				}
				continue
			}
			if _, taken := backward[td]; taken {
				return false
			}
			forward[sd] = td
			backward[td] = sd
			workList = append(workList, sd)
		}
	}

	return true
}
