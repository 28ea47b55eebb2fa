// Package automaton implements the two-action Tsetlin automaton
package automaton

// Rand is the random source consumed by automata and feedback sampling.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {

	// IntN returns a uniform integer in [0, n).
	IntN(n int) int

	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Automaton decides whether a literal is included in a clause. States
// 0..maxActivation-1 exclude, states maxActivation..2*maxActivation include.
type Automaton struct {
	maxActivation int32
	state         int32
}

// New creates an automaton next to the decision boundary, in state
// maxActivation-1 or maxActivation with equal probability.
func New(maxActivation int, r Rand) Automaton {
	return Automaton{
		maxActivation: int32(maxActivation),
		state:         int32(maxActivation - 1 + r.IntN(2)),
	}
}

// WithState creates an automaton in a given state, clamped into 0..2*maxActivation.
func WithState(maxActivation, state int) Automaton {
	if state < 0 {
		state = 0
	}
	if state > 2*maxActivation {
		state = 2 * maxActivation
	}
	return Automaton{
		maxActivation: int32(maxActivation),
		state:         int32(state),
	}
}

// Output reports whether the automaton includes its literal
func (a Automaton) Output() bool {
	return a.state >= a.maxActivation
}

// State returns the current state
func (a Automaton) State() int {
	return int(a.state)
}

// MaxActivation returns the first including state
func (a Automaton) MaxActivation() int {
	return int(a.maxActivation)
}

// Transition moves the automaton according to feedback. Reward deepens the
// current decision, Penalty pushes toward the boundary and eventually across it.
func (a *Automaton) Transition(f Feedback) {
	switch f {
	case Reward:
		if a.state >= a.maxActivation {
			if a.state < 2*a.maxActivation {
				a.state++
			}
		} else if a.state > 0 {
			a.state--
		}
	case Penalty:
		if a.state >= a.maxActivation {
			if a.state > 0 {
				a.state--
			}
		} else if a.state < 2*a.maxActivation {
			a.state++
		}
	}
}
