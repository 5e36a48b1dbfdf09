package dfamin

import (
	"cmp"
	"io"
	"log/slog"
	"slices"
)

type options struct {
	logger    *slog.Logger
	order     func(a, b State) int
	firstSeen bool
}

type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		order:  cmp.Compare[State],
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger sets the logger used to trace pipeline stages. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStateOrder sets the total order used to pick block representatives and
// to lay out the states of the result. The default orders states by identifier.
func WithStateOrder(order func(a, b State) int) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
			o.firstSeen = false
		}
	}
}

// WithFirstSeenOrder orders states by their position in the input automaton
// instead of by identifier.
func WithFirstSeenOrder() Option {
	return func(o *options) {
		o.firstSeen = true
	}
}

// ranks returns, for every state index of d, its position in the configured
// total order. Ties under a caller comparator fall back to declaration order.
func (o *options) ranks(d *DFA) []int {
	n := len(d.states)
	rank := make([]int, n)
	if o.firstSeen {
		for i := range rank {
			rank[i] = i
		}
		return rank
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return o.order(d.states[a], d.states[b])
	})
	for pos, s := range order {
		rank[s] = pos
	}
	return rank
}
