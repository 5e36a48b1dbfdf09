package dfamin

// Accepts Returns true if d accepts word. Words containing a symbol outside
// the alphabet are rejected, as is every word on an automaton without states.
func Accepts(d *DFA, word []Symbol) bool {
	state := d.start()
	if state < 0 {
		return false
	}
	for _, symbol := range word {
		c, ok := d.symbolIndex[symbol]
		if !ok {
			return false
		}
		state = d.step(state, c)
	}
	return d.final(state)
}

// Run Returns true if d accepts word.
func (d *DFA) Run(word ...Symbol) bool {
	return Accepts(d, word)
}
