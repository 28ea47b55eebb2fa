package trainer

import "context"
import "log/slog"
import "math/rand/v2"
import "time"

import "github.com/pkg/errors"

import "github.com/neurlang/tsetlin/datasets"
import "github.com/neurlang/tsetlin/metrics"
import "github.com/neurlang/tsetlin/tsetlin"

// Learner is trained one sample at a time
type Learner interface {
	Predictor
	Fit(input []bool, target bool)
}

// statser is implemented by learners which count their feedback, like *tsetlin.Machine
type statser interface {
	Stats() tsetlin.Stats
}

// Trainer runs the training loop
type Trainer struct {
	Epochs  int  // maximum number of passes over the training set
	Target  int  // stop once test accuracy reaches this many percent, 0 never stops early
	Shuffle bool // shuffle the training set before each epoch
	Balance bool // oversample the minority label before training

	// Significance evaluates intermediate epochs on a random sample of the
	// test set, big enough for this confidence level (e.g. 95). 0 uses the full set.
	Significance byte

	Workers int // concurrent predictions during evaluation

	Rand    *rand.Rand       // used for shuffling, balancing and sampling
	Logger  *slog.Logger     // nil discards
	Metrics *metrics.Metrics // nil disables
}

// Result describes the state after the last completed epoch
type Result struct {
	Epochs  int
	Correct int
	Total   int
	Elapsed time.Duration
}

// Accuracy returns the correct fraction of the evaluated samples
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Success returns the accuracy in whole percent
func (r Result) Success() int {
	if r.Total == 0 {
		return 0
	}
	return 100 * r.Correct / r.Total
}

// Train fits l on train for up to t.Epochs epochs and evaluates it on test
// after each epoch. It returns early with the context error when ctx ends.
func (t *Trainer) Train(ctx context.Context, l Learner, train, test datasets.Dataset) (Result, error) {
	var logger = t.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var r = t.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var data datasets.Dataset
	if t.Balance {
		data = datasets.BalanceDataset(train.Split(), r).Join()
	} else {
		data = append(data, train...)
	}

	var prev tsetlin.Stats
	stats, hasStats := l.(statser)
	if hasStats {
		prev = stats.Stats()
	}

	var start = time.Now()
	var res Result
	if t.Epochs <= 0 {
		correct, err := Evaluate(ctx, l, test, t.Workers)
		return Result{Correct: correct, Total: len(test), Elapsed: time.Since(start)}, err
	}

	for epoch := 1; epoch <= t.Epochs; epoch++ {
		epochStart := time.Now()
		if t.Shuffle {
			data.Shuffle(r)
		}
		for _, s := range data {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrapf(err, "epoch %d", epoch)
			}
			l.Fit(s.Features, s.Label)
		}
		if t.Metrics != nil {
			t.Metrics.EpochDuration.Observe(time.Since(epochStart).Seconds())
			if hasStats {
				cur := stats.Stats()
				t.Metrics.Observe(prev, cur)
				prev = cur
			}
		}

		var eval = test
		if t.Significance > 0 && epoch < t.Epochs {
			eval = sample(test, sampleSize(len(test), t.Significance), r)
		}
		correct, err := t.evaluate(ctx, l, eval)
		if err != nil {
			return res, errors.Wrapf(err, "epoch %d", epoch)
		}
		res = Result{Epochs: epoch, Correct: correct, Total: len(eval), Elapsed: time.Since(start)}

		// a sampled estimate is only trusted to stop once the full set agrees
		if t.Target > 0 && res.Success() >= t.Target && len(eval) < len(test) {
			correct, err = t.evaluate(ctx, l, test)
			if err != nil {
				return res, errors.Wrapf(err, "epoch %d", epoch)
			}
			res.Correct, res.Total = correct, len(test)
		}

		logger.Info("epoch",
			"epoch", epoch,
			"correct", res.Correct,
			"total", res.Total,
			"accuracy", res.Accuracy(),
			"elapsed", time.Since(epochStart))

		if t.Metrics != nil {
			t.Metrics.Accuracy.Set(res.Accuracy())
		}
		if t.Target > 0 && res.Success() >= t.Target {
			logger.Info("target reached", "epoch", epoch, "target", t.Target)
			break
		}
	}
	return res, nil
}

func (t *Trainer) evaluate(ctx context.Context, l Learner, d datasets.Dataset) (int, error) {
	correct, err := Evaluate(ctx, l, d, t.Workers)
	if t.Metrics != nil {
		t.Metrics.Predictions.Add(float64(len(d)))
	}
	return correct, err
}
