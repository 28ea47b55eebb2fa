// Package clause implements a Tsetlin clause, a conjunction of included literals
package clause

import "github.com/neurlang/tsetlin/automaton"

// Clause is a conjunction over literals chosen by its automata. Literal 2k is
// feature k and literal 2k+1 is its negation.
type Clause struct {
	maxActivation int
	automata      []automaton.Automaton

	// output caches automata[i].Output()
	output []bool

	rand automaton.Rand
}

// New creates a clause over featureCount features (2*featureCount literals).
// The clause draws its automata and all of its feedback from r.
func New(featureCount, maxActivation int, r automaton.Rand) *Clause {
	c := &Clause{
		maxActivation: maxActivation,
		automata:      make([]automaton.Automaton, 2*featureCount),
		output:        make([]bool, 2*featureCount),
		rand:          r,
	}
	c.draw()
	c.Refresh()
	return c
}

// FromAutomata creates a clause over an explicit automata population.
// Resets redraw a population of the same length.
func FromAutomata(maxActivation int, automata []automaton.Automaton, r automaton.Rand) *Clause {
	c := &Clause{
		maxActivation: maxActivation,
		automata:      append([]automaton.Automaton(nil), automata...),
		output:        make([]bool, len(automata)),
		rand:          r,
	}
	c.Refresh()
	return c
}

func (c *Clause) draw() {
	for i := range c.automata {
		c.automata[i] = automaton.New(c.maxActivation, c.rand)
	}
}

// Refresh recomputes the cached output. A clause which includes no literal is
// dead (it would always fire) and gets a freshly drawn population. A draw of n
// automata is dead with probability 2^-n, so the loop ends almost surely.
// Refresh returns how many times the population was redrawn.
func (c *Clause) Refresh() (resets int) {
	if len(c.automata) == 0 {
		return 0
	}
	for {
		var alive bool
		for i := range c.automata {
			c.output[i] = c.automata[i].Output()
			alive = alive || c.output[i]
		}
		if alive {
			return
		}
		c.draw()
		resets++
	}
}

// Apply evaluates the clause on an expanded literal vector. Excluded literals
// never falsify the clause. Literals and automata are paired up to the
// shorter of the two.
func (c *Clause) Apply(literals []bool) bool {
	n := len(literals)
	if len(c.output) < n {
		n = len(c.output)
	}
	for i := 0; i < n; i++ {
		if c.output[i] && !literals[i] {
			return false
		}
	}
	return true
}

// Automata returns the automata for feedback. Callers must Refresh after mutating them.
func (c *Clause) Automata() []automaton.Automaton {
	return c.automata
}

// Included returns a copy of the cached include decisions
func (c *Clause) Included() []bool {
	return append([]bool(nil), c.output...)
}

// Rand returns the random source owned by this clause
func (c *Clause) Rand() automaton.Rand {
	return c.rand
}

// Len returns the number of literals
func (c *Clause) Len() int {
	return len(c.automata)
}

// FeatureCount returns the number of features the clause was built for
func (c *Clause) FeatureCount() int {
	return len(c.automata) / 2
}

// MaxActivation returns the automata max activation
func (c *Clause) MaxActivation() int {
	return c.maxActivation
}
