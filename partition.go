package dfamin

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// signature lists, for each symbol in alphabet order, the block that holds
// the target of a state's transition on that symbol.
type signature []int

func (s signature) Hash() uint64 {
	return mixSequence(s)
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && slices.Equal(s, o)
}

// partition splits the states of a DFA into disjoint, non-empty blocks.
// Members of a block are kept in rank order, so the first member is the
// block's representative.
type partition struct {
	blocks  [][]int
	blockOf []int
}

// initialPartition separates final from non-final states, omitting an empty
// side. byRank lists state indices in rank order.
func initialPartition(d *DFA, byRank []int) *partition {
	var finals, others []int
	for _, s := range byRank {
		if d.final(s) {
			finals = append(finals, s)
		} else {
			others = append(others, s)
		}
	}

	p := &partition{blockOf: make([]int, len(byRank))}
	for _, block := range [][]int{finals, others} {
		if len(block) == 0 {
			continue
		}
		for _, s := range block {
			p.blockOf[s] = len(p.blocks)
		}
		p.blocks = append(p.blocks, block)
	}
	return p
}

// split runs one round of Moore refinement: every block is divided into
// groups of states with identical signatures. New blocks are numbered in the
// order they are first seen.
func (p *partition) split(d *DFA) *partition {
	width := len(d.alphabet)
	next := &partition{
		blocks:  make([][]int, 0, len(p.blocks)),
		blockOf: make([]int, len(p.blockOf)),
	}

	for _, block := range p.blocks {
		groups := NewHashMap[int](WithCapacity(len(block)))
		for _, s := range block {
			sig := make(signature, width)
			for c := 0; c < width; c++ {
				sig[c] = p.blockOf[d.step(s, c)]
			}

			b, ok := groups.Get(sig)
			if !ok {
				b = len(next.blocks)
				next.blocks = append(next.blocks, nil)
				groups.Set(sig, b)
			}
			next.blocks[b] = append(next.blocks[b], s)
			next.blockOf[s] = b
		}
	}

	return next
}

// refine merges indistinguishable states of d and returns the quotient
// automaton together with the number of refinement rounds. An automaton with
// no states or no symbols is returned as is.
func refine(d *DFA, o *options) (*DFA, int) {
	if d.NumStates() == 0 || len(d.alphabet) == 0 {
		return d, 0
	}

	rank := o.ranks(d)
	byRank := make([]int, len(rank))
	for s, r := range rank {
		byRank[r] = s
	}

	p := initialPartition(d, byRank)
	rounds := 0
	for {
		rounds++
		next := p.split(d)
		// Blocks are only ever split, so an unchanged count means an
		// unchanged partition.
		if len(next.blocks) == len(p.blocks) {
			break
		}
		p = next
	}

	return quotient(d, p, rank), rounds
}

// quotient builds the automaton whose states are the representatives of the
// blocks of p, laid out in rank order.
func quotient(d *DFA, p *partition, rank []int) *DFA {
	order := make([]int, len(p.blocks))
	for b := range order {
		order[b] = b
	}
	slices.SortFunc(order, func(a, b int) int {
		return rank[p.blocks[a][0]] - rank[p.blocks[b][0]]
	})

	newIndex := make([]int, len(p.blocks))
	for pos, b := range order {
		newIndex[b] = pos
	}

	width := len(d.alphabet)
	states := make([]State, len(order))
	transitions := make([]int, len(order)*width)
	isFinal := bitset.New(uint(len(order)))
	for pos, b := range order {
		rep := p.blocks[b][0]
		states[pos] = d.states[rep]
		for c := 0; c < width; c++ {
			transitions[pos*width+c] = newIndex[p.blockOf[d.step(rep, c)]]
		}
		if d.final(rep) {
			isFinal.Set(uint(pos))
		}
	}

	return newDFA(states, slices.Clone(d.alphabet), transitions, newIndex[p.blockOf[d.initial]], isFinal)
}
