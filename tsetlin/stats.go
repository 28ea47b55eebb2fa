package tsetlin

// Stats are cumulative training counters of a machine
type Stats struct {
	Fits   uint64 // samples fitted
	TypeI  uint64 // clauses given Type I feedback
	TypeII uint64 // clauses given Type II feedback
	Resets uint64 // dead clause populations redrawn
}

// Stats reads the training counters. Safe to call while Fit runs.
func (m *Machine) Stats() Stats {
	return Stats{
		Fits:   m.fits.Load(),
		TypeI:  m.typeI.Load(),
		TypeII: m.typeII.Load(),
		Resets: m.resets.Load(),
	}
}

// Banks returns the number of positive and negative clauses
func (m *Machine) Banks() (positive, negative int) {
	return len(m.positive), len(m.negative)
}

// FeatureCount returns the number of input features
func (m *Machine) FeatureCount() int {
	return m.featureCount
}

// S returns the specificity s
func (m *Machine) S() float64 {
	return m.s
}

// Threshold returns the vote threshold T
func (m *Machine) Threshold() float64 {
	return m.threshold
}

// Seed returns the seed the clause streams were derived from
func (m *Machine) Seed() uint64 {
	return m.seed
}
