package dfamin

import (
	"fmt"
	"slices"
)

// Automata builds small total automata over a fixed alphabet.
type Automata struct {
	Alphabet []Symbol
}

// NewAutomata returns a factory for automata over alphabet.
func NewAutomata(alphabet ...Symbol) *Automata {
	return &Automata{Alphabet: slices.Clone(alphabet)}
}

// sink is the name given to the rejecting sink of canned automata.
const sink = State("dead")

func (a *Automata) loop(state State) map[Symbol]State {
	row := make(map[Symbol]State, len(a.Alphabet))
	for _, c := range a.Alphabet {
		row[c] = state
	}
	return row
}

// MakeEmpty
// Returns a new automaton with the empty language.
func (a *Automata) MakeEmpty() (*DFA, error) {
	return NewDFA(Definition{
		States:      []State{sink},
		Alphabet:    a.Alphabet,
		Transitions: map[State]map[Symbol]State{sink: a.loop(sink)},
		Initial:     sink,
	})
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (a *Automata) MakeEmptyString() (*DFA, error) {
	return a.MakeString()
}

// MakeAnyString
// Returns a new automaton that accepts all strings.
func (a *Automata) MakeAnyString() (*DFA, error) {
	s := State("any")
	return NewDFA(Definition{
		States:      []State{s},
		Alphabet:    a.Alphabet,
		Transitions: map[State]map[Symbol]State{s: a.loop(s)},
		Initial:     s,
		Finals:      []State{s},
	})
}

// MakeString
// Returns a new automaton that accepts exactly word.
func (a *Automata) MakeString(word ...Symbol) (*DFA, error) {
	def := Definition{
		Alphabet:    a.Alphabet,
		Transitions: make(map[State]map[Symbol]State, len(word)+2),
	}
	for i := 0; i <= len(word); i++ {
		s := State(fmt.Sprintf("q%d", i))
		def.States = append(def.States, s)
		def.Transitions[s] = a.loop(sink)
		if i > 0 {
			prev := def.States[i-1]
			if !slices.Contains(a.Alphabet, word[i-1]) {
				return nil, fmt.Errorf("symbol %q is not in the alphabet", word[i-1])
			}
			def.Transitions[prev][word[i-1]] = s
		}
	}
	def.States = append(def.States, sink)
	def.Transitions[sink] = a.loop(sink)
	def.Initial = def.States[0]
	def.Finals = []State{def.States[len(word)]}
	return NewDFA(def)
}
