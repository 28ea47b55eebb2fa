package feedback

import "testing"
import "math/rand/v2"

import "github.com/neurlang/tsetlin/automaton"

// fixed always returns the same draw
type fixed float64

func (f fixed) IntN(n int) int    { return 0 }
func (f fixed) Float64() float64 { return float64(f) }

func TestSampleTypeI(t *testing.T) {
	const s = 4.0
	var normal, rare = fixed(0.9), fixed(0.1)
	var cases = []struct {
		include, literal, clause bool
		r                        automaton.Rand
		want                     automaton.Feedback
	}{
		{true, true, true, normal, automaton.Reward},
		{false, true, true, normal, automaton.Penalty},
		{true, true, true, rare, automaton.Inaction},
		{false, true, true, rare, automaton.Inaction},
		{true, false, true, normal, automaton.Inaction},
		{false, false, true, normal, automaton.Inaction},
		{true, false, true, rare, automaton.Reward},
		{false, false, true, rare, automaton.Reward},
		{true, true, false, normal, automaton.Inaction},
		{false, false, false, normal, automaton.Inaction},
		{true, true, false, rare, automaton.Penalty},
		{true, false, false, rare, automaton.Penalty},
		{false, true, false, rare, automaton.Reward},
		{false, false, false, rare, automaton.Reward},
	}
	for i, c := range cases {
		got := SampleTypeI(s, c.include, c.literal, c.clause, c.r)
		if got != c.want {
			t.Errorf("case %d: include=%v literal=%v clause=%v: %s, want %s",
				i, c.include, c.literal, c.clause, got, c.want)
		}
	}
}

func TestSampleTypeIRareRate(t *testing.T) {
	var r = rand.New(rand.NewPCG(11, 12))
	var rare int
	const n = 100000
	for i := 0; i < n; i++ {
		if SampleTypeI(4, true, true, true, r) == automaton.Inaction {
			rare++
		}
	}
	if rare < n/4-n/50 || rare > n/4+n/50 {
		t.Errorf("rare branch hit %d of %d, want about 1/4", rare, n)
	}
}

func TestSampleTypeII(t *testing.T) {
	for _, include := range []bool{false, true} {
		for _, literal := range []bool{false, true} {
			for _, clause := range []bool{false, true} {
				got := SampleTypeII(include, literal, clause)
				want := automaton.Inaction
				if clause && !literal && !include {
					want = automaton.Penalty
				}
				if got != want {
					t.Errorf("include=%v literal=%v clause=%v: %s, want %s", include, literal, clause, got, want)
				}
			}
		}
	}
}

func TestGiveTypeII(t *testing.T) {
	var family = []automaton.Automaton{
		automaton.WithState(10, 5),  // excluding, literal false -> penalty
		automaton.WithState(10, 5),  // excluding, literal true -> inaction
		automaton.WithState(10, 15), // including, literal false -> inaction
	}
	GiveTypeII([]bool{false, true, false}, true, family)
	if family[0].State() != 6 || family[1].State() != 5 || family[2].State() != 15 {
		t.Errorf("states %d %d %d", family[0].State(), family[1].State(), family[2].State())
	}
	GiveTypeII([]bool{false, true, false}, false, family)
	if family[0].State() != 6 {
		t.Errorf("non-firing clause must not get type II feedback")
	}
}

func TestGiveTypeI(t *testing.T) {
	var family = []automaton.Automaton{
		automaton.WithState(10, 12),
		automaton.WithState(10, 8),
		automaton.WithState(10, 12),
	}
	// literal vector shorter than the family: the last automaton is untouched
	GiveTypeI(4, []bool{true, true}, true, family, fixed(0.9))
	if family[0].State() != 13 || family[1].State() != 9 || family[2].State() != 12 {
		t.Errorf("states %d %d %d", family[0].State(), family[1].State(), family[2].State())
	}
}
