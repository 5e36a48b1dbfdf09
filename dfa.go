package dfamin

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/jinzhu/copier"
)

// State is an opaque state identifier.
type State string

// Symbol is one input symbol of an alphabet.
type Symbol string

// Definition is the raw, serializable description of a DFA. It carries no
// guarantees until it is passed through NewDFA.
type Definition struct {
	States      []State                    `json:"states" yaml:"states" cbor:"states"`
	Alphabet    []Symbol                   `json:"alphabet" yaml:"alphabet" cbor:"alphabet"`
	Transitions map[State]map[Symbol]State `json:"transitions" yaml:"transitions" cbor:"transitions"`
	Initial     State                      `json:"initial" yaml:"initial" cbor:"initial"`
	Finals      []State                    `json:"finals" yaml:"finals" cbor:"finals"`
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() (Definition, error) {
	var out Definition
	if err := copier.CopyWithOption(&out, &d, copier.Option{DeepCopy: true}); err != nil {
		return Definition{}, fmt.Errorf("clone definition: %w", err)
	}
	return out, nil
}

// DFA is a validated deterministic finite automaton. States are stored as dense
// indices in declaration order; a DFA is never modified after construction.
// The zero DFA is the automaton without states; every other DFA comes from
// NewDFA.
type DFA struct {
	states []State
	index  map[State]int

	alphabet    []Symbol
	symbolIndex map[Symbol]int

	// Target state index for every (state, symbol) pair, packed row by row:
	// the target of state s on symbol c is transitions[s*len(alphabet)+c].
	transitions []int

	// Index of the initial state, or -1 when there are no states.
	initial int

	isFinal *bitset.BitSet
}

// NewDFA validates def and builds an immutable DFA from it.
func NewDFA(def Definition) (*DFA, error) {
	if err := validate(def); err != nil {
		return nil, err
	}

	states := slices.Clone(def.States)
	alphabet := slices.Clone(def.Alphabet)
	index := indexOf(states)
	symbolIndex := indexOf(alphabet)

	transitions := make([]int, len(states)*len(alphabet))
	for s, state := range states {
		row := def.Transitions[state]
		for c, symbol := range alphabet {
			transitions[s*len(alphabet)+c] = index[row[symbol]]
		}
	}

	isFinal := bitset.New(uint(len(states)))
	for _, f := range def.Finals {
		isFinal.Set(uint(index[f]))
	}

	initial := -1
	if len(states) > 0 {
		initial = index[def.Initial]
	}

	return &DFA{
		states:      states,
		index:       index,
		alphabet:    alphabet,
		symbolIndex: symbolIndex,
		transitions: transitions,
		initial:     initial,
		isFinal:     isFinal,
	}, nil
}

// MustNewDFA is like NewDFA but panics on an invalid definition.
func MustNewDFA(def Definition) *DFA {
	d, err := NewDFA(def)
	if err != nil {
		panic(err)
	}
	return d
}

// newDFA assembles a DFA from already consistent parts. It takes ownership of
// its arguments.
func newDFA(states []State, alphabet []Symbol, transitions []int, initial int, isFinal *bitset.BitSet) *DFA {
	return &DFA{
		states:      states,
		index:       indexOf(states),
		alphabet:    alphabet,
		symbolIndex: indexOf(alphabet),
		transitions: transitions,
		initial:     initial,
		isFinal:     isFinal,
	}
}

func indexOf[T comparable](values []T) map[T]int {
	m := make(map[T]int, len(values))
	for i, v := range values {
		m[v] = i
	}
	return m
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// States Returns the states in their stored order.
func (d *DFA) States() []State {
	return slices.Clone(d.states)
}

// Alphabet Returns the alphabet in its fixed order.
func (d *DFA) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// Initial Returns the initial state; false when the automaton has no states.
func (d *DFA) Initial() (State, bool) {
	start := d.start()
	if start < 0 {
		return "", false
	}
	return d.states[start], true
}

// Finals Returns the final states in stored order.
func (d *DFA) Finals() []State {
	isFinal := d.accepting()
	finals := make([]State, 0, isFinal.Count())
	for i, ok := isFinal.NextSet(0); ok; i, ok = isFinal.NextSet(i + 1) {
		finals = append(finals, d.states[i])
	}
	return finals
}

// IsFinal Returns true if state is a final (accepting) state.
func (d *DFA) IsFinal(state State) bool {
	i, ok := d.index[state]
	return ok && d.accepting().Test(uint(i))
}

// Next Returns the target of state on symbol; false if either is unknown.
func (d *DFA) Next(state State, symbol Symbol) (State, bool) {
	s, ok := d.index[state]
	if !ok {
		return "", false
	}
	c, ok := d.symbolIndex[symbol]
	if !ok {
		return "", false
	}
	return d.states[d.step(s, c)], true
}

func (d *DFA) step(state, symbol int) int {
	return d.transitions[state*len(d.alphabet)+symbol]
}

func (d *DFA) final(state int) bool {
	return d.accepting().Test(uint(state))
}

// start Returns the index of the initial state, or -1 without states.
func (d *DFA) start() int {
	if len(d.states) == 0 {
		return -1
	}
	return d.initial
}

func (d *DFA) accepting() *bitset.BitSet {
	if d.isFinal == nil {
		return bitset.New(0)
	}
	return d.isFinal
}

// Definition Returns a freshly allocated description of the automaton.
func (d *DFA) Definition() Definition {
	def := Definition{
		States:      slices.Clone(d.states),
		Alphabet:    slices.Clone(d.alphabet),
		Transitions: make(map[State]map[Symbol]State, len(d.states)),
		Finals:      d.Finals(),
	}
	if start := d.start(); start >= 0 {
		def.Initial = d.states[start]
	}
	for s, state := range d.states {
		row := make(map[Symbol]State, len(d.alphabet))
		for c, symbol := range d.alphabet {
			row[symbol] = d.states[d.step(s, c)]
		}
		def.Transitions[state] = row
	}
	return def
}

func (d *DFA) String() string {
	b := new(strings.Builder)
	initial, _ := d.Initial()
	fmt.Fprintf(b, "states=%v alphabet=%v initial=%q finals=%v\n", d.states, d.alphabet, initial, d.Finals())
	for s, state := range d.states {
		for c, symbol := range d.alphabet {
			fmt.Fprintf(b, "  %s -%s-> %s\n", state, symbol, d.states[d.step(s, c)])
		}
	}
	return b.String()
}
