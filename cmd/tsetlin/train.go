package main

import "fmt"
import "io"
import "log/slog"
import "math"
import "math/rand/v2"
import "time"

import "github.com/pkg/errors"
import "github.com/prometheus/client_golang/prometheus"
import "github.com/spf13/cobra"

import "github.com/neurlang/tsetlin/config"
import "github.com/neurlang/tsetlin/datasets"
import "github.com/neurlang/tsetlin/datasets/column"
import "github.com/neurlang/tsetlin/datasets/xor"
import "github.com/neurlang/tsetlin/metrics"
import "github.com/neurlang/tsetlin/parallel"
import "github.com/neurlang/tsetlin/runlog"
import "github.com/neurlang/tsetlin/trainer"
import "github.com/neurlang/tsetlin/tsetlin"

// trainFlags are command line overrides of the config file
type trainFlags struct {
	config string

	clauses   int
	features  int
	threshold float64
	s         float64
	workers   int
	seed      uint64

	dataset string
	column  int
	noise   float64
	samples int
	epochs  int
	target  int

	runLog      string
	metricsFile string
	logLevel    string
}

func (a *app) train() *cobra.Command {
	var f trainFlags
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a machine on a synthetic dataset and report its accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return runTrain(cmd, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML config file")
	fl.IntVar(&f.clauses, "clauses", 0, "number of clauses")
	fl.IntVar(&f.features, "features", 0, "number of input features")
	fl.Float64Var(&f.threshold, "threshold", 0, "vote threshold T")
	fl.Float64Var(&f.s, "s", 0, "specificity s")
	fl.IntVar(&f.workers, "workers", 0, "clause workers, 0 uses every core")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one")
	fl.StringVar(&f.dataset, "dataset", "", "dataset: column or xor")
	fl.IntVar(&f.column, "column", 0, "label feature of the column dataset")
	fl.Float64Var(&f.noise, "noise", 0, "probability of flipping a training label")
	fl.IntVar(&f.samples, "samples", 0, "training samples per epoch")
	fl.IntVar(&f.epochs, "epochs", 0, "maximum number of epochs")
	fl.IntVar(&f.target, "target", 0, "stop at this accuracy percent")
	fl.StringVar(&f.runLog, "run-log", "", "SQLite file to record the run in")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// load reads the config file, then applies the flags which were set
func (f *trainFlags) load(cmd *cobra.Command) (config.Config, error) {
	var cfg = config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return cfg, err
		}
	}
	changed := cmd.Flags().Changed
	if changed("clauses") {
		cfg.Machine.Clauses = f.clauses
	}
	if changed("features") {
		cfg.Machine.Features = f.features
	}
	if changed("threshold") {
		cfg.Machine.Threshold = f.threshold
	}
	if changed("s") {
		cfg.Machine.S = f.s
	}
	if changed("workers") {
		cfg.Machine.Workers = f.workers
	}
	if changed("seed") {
		cfg.Machine.Seed = f.seed
	}
	if changed("dataset") {
		cfg.Training.Dataset = f.dataset
	}
	if changed("column") {
		cfg.Training.Column = f.column
	}
	if changed("noise") {
		cfg.Training.Noise = f.noise
	}
	if changed("samples") {
		cfg.Training.Samples = f.samples
	}
	if changed("epochs") {
		cfg.Training.Epochs = f.epochs
	}
	if changed("target") {
		cfg.Training.Target = f.target
	}
	if changed("run-log") {
		cfg.RunLog = f.runLog
	}
	if changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// buildDatasets returns the training samples and the noise-free test set
func buildDatasets(t config.Training, features int, r *rand.Rand) (train, test datasets.Dataset) {
	switch t.Dataset {
	case "xor":
		return xor.Train(t.Samples, features, t.Noise, r), xor.Test(features)
	default:
		return column.Train(t.Samples, features, t.Column, t.Noise, r), column.Test(features, t.Column)
	}
}

func runTrain(cmd *cobra.Command, cfg config.Config) error {
	var logger = newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	var hp = cfg.Machine

	var opts []tsetlin.Option
	if hp.Seed != 0 {
		opts = append(opts, tsetlin.WithSeed(hp.Seed))
	}
	if hp.Workers > 0 {
		opts = append(opts, tsetlin.WithWorkers(hp.Workers))
	}
	m := tsetlin.New(hp.Clauses, hp.MaxActivation, hp.S, hp.Threshold, hp.Features, opts...)
	positive, negative := m.Banks()
	logger.Debug("machine",
		"positive", positive,
		"negative", negative,
		"features", hp.Features,
		"seed", m.Seed())

	// clause streams use the low stream ids, data takes the last one
	r := rand.New(rand.NewPCG(m.Seed(), math.MaxUint64))
	train, test := buildDatasets(cfg.Training, hp.Features, r)

	reg := prometheus.NewRegistry()
	tr := trainer.Trainer{
		Epochs:       cfg.Training.Epochs,
		Target:       cfg.Training.Target,
		Shuffle:      cfg.Training.Shuffle,
		Balance:      cfg.Training.Balance,
		Significance: cfg.Training.Significance,
		Workers:      hp.Workers,
		Rand:         r,
		Logger:       logger,
		Metrics:      metrics.New(reg),
	}
	if tr.Workers == 0 {
		tr.Workers = parallel.Workers()
	}

	started := time.Now()
	res, err := tr.Train(cmd.Context(), m, train, test)
	if err != nil {
		return err
	}
	finished := time.Now()

	fmt.Fprintf(cmd.OutOrStdout(), "accuracy %d/%d (%d%%) after %d epochs in %s\n",
		res.Correct, res.Total, res.Success(), res.Epochs, res.Elapsed.Round(time.Millisecond))

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	if cfg.RunLog != "" {
		store, err := runlog.Open(cfg.RunLog)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Record(cmd.Context(), runlog.Run{
			Started:       started,
			Finished:      finished,
			Dataset:       cfg.Training.Dataset,
			Clauses:       hp.Clauses,
			MaxActivation: hp.MaxActivation,
			S:             hp.S,
			Threshold:     hp.Threshold,
			Features:      hp.Features,
			Seed:          m.Seed(),
			Epochs:        res.Epochs,
			Correct:       res.Correct,
			Total:         res.Total,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", id)
	}
	return nil
}
