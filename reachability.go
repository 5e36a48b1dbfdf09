package dfamin

import (
	"github.com/bits-and-blooms/bitset"
)

// getLiveStatesFromInitial Returns the set of states reachable from the
// initial state, following every symbol.
func getLiveStatesFromInitial(d *DFA) *bitset.BitSet {
	numStates := d.NumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}

	workList := make([]int, 0, numStates)
	live.Set(uint(d.initial))
	workList = append(workList, d.initial)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for c := range d.alphabet {
			dest := d.step(s, c)
			if live.Test(uint(dest)) == false {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}

	return live
}

// prune Returns d restricted to the states reachable from its initial state.
// Surviving states keep their relative order.
func prune(d *DFA) *DFA {
	numStates := d.NumStates()
	live := getLiveStatesFromInitial(d)
	if live.Count() == uint(numStates) {
		return d
	}

	// Old index -> new index, -1 for dropped states.
	mp := make([]int, numStates)
	states := make([]State, 0, live.Count())
	for i := 0; i < numStates; i++ {
		mp[i] = -1
		if live.Test(uint(i)) {
			mp[i] = len(states)
			states = append(states, d.states[i])
		}
	}

	width := len(d.alphabet)
	transitions := make([]int, len(states)*width)
	isFinal := bitset.New(uint(len(states)))
	for i := 0; i < numStates; i++ {
		if mp[i] == -1 {
			continue
		}
		for c := 0; c < width; c++ {
			transitions[mp[i]*width+c] = mp[d.step(i, c)]
		}
		if d.final(i) {
			isFinal.Set(uint(mp[i]))
		}
	}

	return newDFA(states, d.alphabet, transitions, mp[d.initial], isFinal)
}
