// Package tsetlin implements a binary Tsetlin machine: two banks of clauses
// voting for and against the positive class, trained by Type I and Type II
// feedback.
package tsetlin

import crypto_rand "crypto/rand"
import "encoding/binary"
import "math/rand/v2"
import "sync/atomic"

import "github.com/neurlang/tsetlin/clause"
import "github.com/neurlang/tsetlin/feedback"
import "github.com/neurlang/tsetlin/parallel"

// Machine is a Tsetlin machine. Fit must not be called concurrently with
// itself or with Predict; Predict may be called concurrently with Predict.
type Machine struct {
	s         float64
	threshold float64

	positive []*clause.Clause
	negative []*clause.Clause

	featureCount int
	workers      int
	seed         uint64

	fits, typeI, typeII, resets atomic.Uint64
}

// Option configures a Machine
type Option func(*Machine)

// WithSeed makes the machine reproducible. Two machines built and trained
// the same way with the same seed end in the same state.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.seed = seed
	}
}

// WithWorkers sets how many goroutines evaluate and train clauses. Values
// below 1 run everything on the calling goroutine.
func WithWorkers(workers int) Option {
	return func(m *Machine) {
		m.workers = workers
	}
}

// New creates a machine with numClauses+1 clauses over featureCount features.
// The first numClauses/2 clauses vote for the positive class, the rest against.
func New(numClauses, maxActivation int, s, threshold float64, featureCount int, opts ...Option) *Machine {
	m := &Machine{
		s:            s,
		threshold:    threshold,
		featureCount: featureCount,
		workers:      parallel.Workers(),
		seed:         trueRandomSeed(),
	}
	for _, opt := range opts {
		opt(m)
	}

	var clauses = make([]*clause.Clause, 0, numClauses+1)
	for i := 0; i <= numClauses; i++ {
		// every clause owns its own stream, so the result does not depend on scheduling
		r := rand.New(rand.NewPCG(m.seed, uint64(i)))
		clauses = append(clauses, clause.New(featureCount, maxActivation, r))
	}
	m.positive = clauses[:numClauses/2]
	m.negative = clauses[numClauses/2:]
	return m
}

func trueRandomSeed() uint64 {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// ExpandLiterals returns the literal vector: each feature followed by its negation
func ExpandLiterals(input []bool) []bool {
	var literals = make([]bool, 0, 2*len(input))
	for _, v := range input {
		literals = append(literals, v, !v)
	}
	return literals
}

// ComputeClauses evaluates both banks. Each output is 1 if the clause fires, 0 otherwise.
func (m *Machine) ComputeClauses(input []bool) (positive, negative []int, literals []bool) {
	literals = ExpandLiterals(input)
	positive = m.evaluate(m.positive, literals)
	negative = m.evaluate(m.negative, literals)
	return
}

func (m *Machine) evaluate(bank []*clause.Clause, literals []bool) []int {
	var out = make([]int, len(bank))
	parallel.ForEach(len(bank), m.workers, func(i int) {
		if bank[i].Apply(literals) {
			out[i] = 1
		}
	})
	return out
}

// Predict reports whether more positive than negative clauses fire. Ties are false.
func (m *Machine) Predict(input []bool) bool {
	positive, negative, _ := m.ComputeClauses(input)
	return sum(positive) > sum(negative)
}

// Fit trains the machine on one sample
func (m *Machine) Fit(input []bool, target bool) {
	positive, negative, literals := m.ComputeClauses(input)
	p := Probability(float64(sum(positive)-sum(negative)), m.threshold)

	if target {
		m.train(m.positive, positive, p, literals, true)
		m.train(m.negative, negative, p, literals, false)
	} else {
		m.train(m.positive, positive, p, literals, false)
		m.train(m.negative, negative, p, literals, true)
	}
	m.fits.Add(1)
}

// train gives feedback to each clause of a bank with probability p. A clause
// is one unit of work: its draws, feedback and refresh stay on one goroutine.
func (m *Machine) train(bank []*clause.Clause, outputs []int, p float64, literals []bool, typeI bool) {
	parallel.ForEach(len(bank), m.workers, func(i int) {
		c := bank[i]
		r := c.Rand()
		if r.Float64() >= p {
			return
		}
		if typeI {
			feedback.GiveTypeI(m.s, literals, outputs[i] == 1, c.Automata(), r)
			m.typeI.Add(1)
		} else {
			feedback.GiveTypeII(literals, outputs[i] == 1, c.Automata())
			m.typeII.Add(1)
		}
		if resets := c.Refresh(); resets > 0 {
			m.resets.Add(uint64(resets))
		}
	})
}

// Probability maps the vote margin v to the probability of giving feedback
// to a clause. Confident votes near ±threshold give almost no feedback, votes
// near zero give feedback half of the time.
func Probability(v, threshold float64) float64 {
	if v < -threshold {
		v = -threshold
	}
	if v > threshold {
		v = threshold
	}
	return (threshold - v) / (2 * threshold)
}

func sum(v []int) (o int) {
	for _, x := range v {
		o += x
	}
	return
}
