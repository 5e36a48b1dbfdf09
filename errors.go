package dfamin

import (
	"errors"
	"fmt"
)

// ErrInvalidAutomaton is matched by every error describing a definition that
// breaks a structural invariant.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// Invariant names the structural rule a definition broke.
type Invariant int

const (
	InvariantDistinctStates   = Invariant(iota) // States are listed at most once
	InvariantDistinctSymbols                    // Symbols are listed at most once
	InvariantInitialState                       // The initial state is a member of states
	InvariantFinalStates                        // Final states are a subset of states
	InvariantTransitionDomain                   // Transitions only leave known states on known symbols
	InvariantTransitionTotal                    // Every (state, symbol) pair has a transition
	InvariantTransitionRange                    // Every transition target is a member of states
)

func (i Invariant) String() string {
	switch i {
	case InvariantDistinctStates:
		return "distinct states"
	case InvariantDistinctSymbols:
		return "distinct symbols"
	case InvariantInitialState:
		return "initial state in states"
	case InvariantFinalStates:
		return "finals subset of states"
	case InvariantTransitionDomain:
		return "transition domain"
	case InvariantTransitionTotal:
		return "transition totality"
	case InvariantTransitionRange:
		return "transition range"
	default:
		return fmt.Sprintf("invariant(%d)", int(i))
	}
}

// InvalidAutomatonError reports which invariant a definition broke and where.
type InvalidAutomatonError struct {
	Invariant Invariant
	State     State
	Symbol    Symbol
	Detail    string
}

func (e *InvalidAutomatonError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidAutomaton, e.Invariant, e.Detail)
}

func (e *InvalidAutomatonError) Is(target error) bool {
	return target == ErrInvalidAutomaton
}

func invalid(inv Invariant, state State, symbol Symbol, format string, args ...any) error {
	return &InvalidAutomatonError{
		Invariant: inv,
		State:     state,
		Symbol:    symbol,
		Detail:    fmt.Sprintf(format, args...),
	}
}
