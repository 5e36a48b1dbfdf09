package dfamin

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDFA(t *testing.T, def Definition) *DFA {
	t.Helper()
	d, err := NewDFA(def)
	require.NoError(t, err)
	return d
}

func word(symbols ...string) []Symbol {
	w := make([]Symbol, len(symbols))
	for i, s := range symbols {
		w[i] = Symbol(s)
	}
	return w
}

// scenarioOne has an unreachable q3 and two equivalent states q0 and q2.
func scenarioOne() Definition {
	return Definition{
		States:   []State{"q0", "q1", "q2", "q3"},
		Alphabet: []Symbol{"a"},
		Transitions: map[State]map[Symbol]State{
			"q0": {"a": "q1"},
			"q1": {"a": "q2"},
			"q2": {"a": "q1"},
			"q3": {"a": "q3"},
		},
		Initial: "q0",
		Finals:  []State{"q1"},
	}
}

// scenarioTwo has two reachable rejecting sinks.
func scenarioTwo() Definition {
	return Definition{
		States:   []State{"s0", "s1", "s2"},
		Alphabet: []Symbol{"x", "y"},
		Transitions: map[State]map[Symbol]State{
			"s0": {"x": "s1", "y": "s2"},
			"s1": {"x": "s1", "y": "s1"},
			"s2": {"x": "s2", "y": "s2"},
		},
		Initial: "s0",
		Finals:  []State{"s0"},
	}
}

// evenLength accepts the words of even length over [a].
func evenLength() Definition {
	return Definition{
		States:   []State{"even", "odd"},
		Alphabet: []Symbol{"a"},
		Transitions: map[State]map[Symbol]State{
			"even": {"a": "odd"},
			"odd":  {"a": "even"},
		},
		Initial: "even",
		Finals:  []State{"even"},
	}
}

// randomDefinition builds a total DFA with n states over k symbols.
func randomDefinition(r *rand.Rand, n, k int) Definition {
	def := Definition{Transitions: make(map[State]map[Symbol]State, n)}
	for i := 0; i < n; i++ {
		def.States = append(def.States, State(fmt.Sprintf("s%d", i)))
	}
	for c := 0; c < k; c++ {
		def.Alphabet = append(def.Alphabet, Symbol(string(rune('a'+c))))
	}
	for _, s := range def.States {
		row := make(map[Symbol]State, k)
		for _, c := range def.Alphabet {
			row[c] = def.States[r.IntN(n)]
		}
		def.Transitions[s] = row
		if r.IntN(3) == 0 {
			def.Finals = append(def.Finals, s)
		}
	}
	def.Initial = def.States[r.IntN(n)]
	return def
}

// words yields every word over alphabet of length at most maxLen.
func words(alphabet []Symbol, maxLen int) [][]Symbol {
	all := [][]Symbol{{}}
	frontier := [][]Symbol{{}}
	for l := 0; l < maxLen; l++ {
		var next [][]Symbol
		for _, w := range frontier {
			for _, c := range alphabet {
				nw := make([]Symbol, len(w)+1)
				copy(nw, w)
				nw[len(w)] = c
				next = append(next, nw)
			}
		}
		all = append(all, next...)
		frontier = next
	}
	return all
}

// distinguishable reports whether some word leads p and q to states that
// disagree on finality.
func distinguishable(d *DFA, p, q int) bool {
	type pair struct{ p, q int }
	seen := map[pair]bool{{p, q}: true}
	workList := []pair{{p, q}}
	for len(workList) > 0 {
		cur := workList[0]
		workList = workList[1:]
		if d.final(cur.p) != d.final(cur.q) {
			return true
		}
		for c := range d.alphabet {
			next := pair{d.step(cur.p, c), d.step(cur.q, c)}
			if !seen[next] {
				seen[next] = true
				workList = append(workList, next)
			}
		}
	}
	return false
}
