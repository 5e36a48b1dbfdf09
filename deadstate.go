package dfamin

import (
	"github.com/bits-and-blooms/bitset"
)

// getDeadStates Returns the non-final states that loop back to themselves on
// every symbol.
func getDeadStates(d *DFA) *bitset.BitSet {
	dead := bitset.New(uint(d.NumStates()))
	for s := 0; s < d.NumStates(); s++ {
		if d.final(s) {
			continue
		}
		absorbing := true
		for c := range d.alphabet {
			if d.step(s, c) != s {
				absorbing = false
				break
			}
		}
		if absorbing {
			dead.Set(uint(s))
		}
	}
	return dead
}

// DeadStates Returns the absorbing non-final states of d in stored order.
func DeadStates(d *DFA) []State {
	dead := getDeadStates(d)
	states := make([]State, 0, dead.Count())
	for i, ok := dead.NextSet(0); ok; i, ok = dead.NextSet(i + 1) {
		states = append(states, d.states[i])
	}
	return states
}

// consolidateDeadStates merges all dead states of d into the one that comes
// first in the configured order. It returns d unchanged when d has at most one
// dead state, and reports how many states were removed.
func consolidateDeadStates(d *DFA, o *options) (*DFA, int) {
	dead := getDeadStates(d)
	if dead.Count() <= 1 {
		return d, 0
	}

	rank := o.ranks(d)
	survivor := -1
	for i, ok := dead.NextSet(0); ok; i, ok = dead.NextSet(i + 1) {
		if survivor == -1 || rank[i] < rank[survivor] {
			survivor = int(i)
		}
	}

	numStates := d.NumStates()
	mp := make([]int, numStates)
	states := make([]State, 0, numStates-int(dead.Count())+1)
	for i := 0; i < numStates; i++ {
		if dead.Test(uint(i)) && i != survivor {
			mp[i] = -1
			continue
		}
		mp[i] = len(states)
		states = append(states, d.states[i])
	}
	redirect := func(s int) int {
		if dead.Test(uint(s)) {
			return mp[survivor]
		}
		return mp[s]
	}

	width := len(d.alphabet)
	transitions := make([]int, len(states)*width)
	isFinal := bitset.New(uint(len(states)))
	for i := 0; i < numStates; i++ {
		if mp[i] == -1 {
			continue
		}
		for c := 0; c < width; c++ {
			transitions[mp[i]*width+c] = redirect(d.step(i, c))
		}
		if d.final(i) {
			isFinal.Set(uint(mp[i]))
		}
	}

	result := newDFA(states, d.alphabet, transitions, redirect(d.initial), isFinal)
	return result, numStates - len(states)
}
