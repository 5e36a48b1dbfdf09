package dfamin

import (
	"log/slog"
	"maps"
	"slices"
)

// Stats describes what each stage of a minimization did.
type Stats struct {
	InputStates        int
	ReachableStates    int
	EquivalenceClasses int
	OutputStates       int
	Rounds             int
	DeadStatesMerged   int
}

// Reduced reports whether minimization changed the number of states.
func (s Stats) Reduced() bool {
	return s.InputStates != s.OutputStates
}

// Minimize
// Returns the minimal DFA recognizing the same language as d: unreachable
// states are dropped, indistinguishable states are merged (Moore's partition
// refinement), and any remaining absorbing non-final sinks are collapsed into
// one. d is not modified, and the result shares no memory with it.
func Minimize(d *DFA, opts ...Option) *DFA {
	m, _ := MinimizeWithStats(d, opts...)
	return m
}

// MinimizeWithStats is like Minimize and also reports per-stage counts.
func MinimizeWithStats(d *DFA, opts ...Option) (*DFA, Stats) {
	o := newOptions(opts...)
	log := o.logger

	stats := Stats{InputStates: d.NumStates()}

	pruned := prune(d)
	stats.ReachableStates = pruned.NumStates()
	log.Debug("pruned unreachable states",
		slog.String("stage", "prune"),
		slog.Int("states", stats.InputStates),
		slog.Int("reachable", stats.ReachableStates))

	refined, rounds := refine(pruned, o)
	stats.Rounds = rounds
	stats.EquivalenceClasses = refined.NumStates()
	log.Debug("refined partition",
		slog.String("stage", "refine"),
		slog.Int("rounds", rounds),
		slog.Int("classes", stats.EquivalenceClasses))

	consolidated, merged := consolidateDeadStates(refined, o)
	stats.DeadStatesMerged = merged
	if merged > 0 {
		// Refinement should already have merged every sink.
		log.Warn("merged dead states after refinement",
			slog.String("stage", "consolidate"),
			slog.Int("merged", merged))
	}

	result := assemble(consolidated)
	stats.OutputStates = result.NumStates()
	log.Debug("assembled minimal automaton",
		slog.String("stage", "assemble"),
		slog.Int("states", stats.OutputStates))

	return result, stats
}

// MinimizeDefinition validates def and minimizes the resulting automaton.
func MinimizeDefinition(def Definition, opts ...Option) (*DFA, error) {
	d, err := NewDFA(def)
	if err != nil {
		return nil, err
	}
	return Minimize(d, opts...), nil
}

// assemble Returns a copy of d that owns all of its memory.
func assemble(d *DFA) *DFA {
	return &DFA{
		states:      slices.Clone(d.states),
		index:       maps.Clone(d.index),
		alphabet:    slices.Clone(d.alphabet),
		symbolIndex: maps.Clone(d.symbolIndex),
		transitions: slices.Clone(d.transitions),
		initial:     d.start(),
		isFinal:     d.accepting().Clone(),
	}
}
