package trainer

import "context"
import "math"
import "math/rand/v2"
import "sync/atomic"

import "github.com/pkg/errors"
import "golang.org/x/sync/errgroup"

import "github.com/neurlang/tsetlin/datasets"

// Predictor classifies one feature vector
type Predictor interface {
	Predict(input []bool) bool
}

// Evaluate counts the samples of d which p classifies correctly. Predictions
// run on up to workers goroutines, so p must allow concurrent Predict calls.
func Evaluate(ctx context.Context, p Predictor, d datasets.Dataset, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var correct atomic.Int64
	for _, s := range d {
		s := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if p.Predict(s.Features) == s.Label {
				correct.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(correct.Load()), errors.Wrap(err, "evaluate")
	}
	return int(correct.Load()), nil
}

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if N <= 1 || significance >= 100 {
		return N
	}

	z := zScoreFromAlpha(100 - significance)

	// worst case proportion p = 0.5, margin of error 100-significance percent
	p := 0.5
	e := float64(100-significance) * 0.01

	ss := math.Pow(z, 2) * p * (1 - p) / math.Pow(e, 2)

	// finite population correction
	corrected := ss * float64(N) / (float64(N) - 1 + ss)

	n := int(math.Ceil(corrected))
	if n > N {
		return N
	}
	return n
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}

// sample picks n distinct samples of d at random
func sample(d datasets.Dataset, n int, r *rand.Rand) datasets.Dataset {
	if n >= len(d) {
		return d
	}
	var o = make(datasets.Dataset, 0, n)
	for _, i := range r.Perm(len(d))[:n] {
		o = append(o, d[i])
	}
	return o
}
