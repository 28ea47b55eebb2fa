package automaton

// Feedback is the reinforcement signal given to an automaton
type Feedback byte

const (
	// Inaction leaves the state unchanged
	Inaction Feedback = iota
	// Reward strengthens the current action
	Reward
	// Penalty weakens the current action
	Penalty
)

func (f Feedback) String() string {
	switch f {
	case Inaction:
		return "inaction"
	case Reward:
		return "reward"
	case Penalty:
		return "penalty"
	}
	return "unknown"
}
