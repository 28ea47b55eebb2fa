// Package feedback implements the Type I and Type II feedback of a Tsetlin machine
package feedback

import "github.com/neurlang/tsetlin/automaton"

// SampleTypeI samples Type I feedback for one automaton. A single draw picks
// the normal branch, or the rare branch with probability 1/s.
func SampleTypeI(s float64, include, literal, clause bool, r automaton.Rand) automaton.Feedback {
	normal := r.Float64() > 1/s
	if clause {
		if literal {
			// clause and literal are true: reinforce inclusion, sometimes do nothing
			if !normal {
				return automaton.Inaction
			}
			if include {
				return automaton.Reward
			}
			return automaton.Penalty
		}
		// literal absent in a firing clause: occasionally try to add it
		if normal {
			return automaton.Inaction
		}
		return automaton.Reward
	}
	// clause did not fire: occasionally push toward exclusion
	if normal {
		return automaton.Inaction
	}
	if include {
		return automaton.Penalty
	}
	return automaton.Reward
}

// SampleTypeII penalizes excluding a false literal in a clause which fired,
// which pushes it to include a literal that would have falsified the clause.
func SampleTypeII(include, literal, clause bool) automaton.Feedback {
	if clause && !literal && !include {
		return automaton.Penalty
	}
	return automaton.Inaction
}

// GiveTypeI applies Type I feedback to an automata family, pairwise against
// the literal vector.
func GiveTypeI(s float64, literals []bool, clause bool, automata []automaton.Automaton, r automaton.Rand) {
	n := min(len(literals), len(automata))
	for i := 0; i < n; i++ {
		automata[i].Transition(SampleTypeI(s, automata[i].Output(), literals[i], clause, r))
	}
}

// GiveTypeII applies Type II feedback to an automata family, pairwise against
// the literal vector.
func GiveTypeII(literals []bool, clause bool, automata []automaton.Automaton) {
	n := min(len(literals), len(automata))
	for i := 0; i < n; i++ {
		automata[i].Transition(SampleTypeII(automata[i].Output(), literals[i], clause))
	}
}
