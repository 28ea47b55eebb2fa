// Package config loads training configuration from YAML files
package config

import "os"

import "github.com/go-playground/validator/v10"
import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

// HyperParameters configure the machine
type HyperParameters struct {
	Clauses       int     `yaml:"clauses" validate:"gt=0"`        // number of clauses, one extra is always built
	MaxActivation int     `yaml:"max_activation" validate:"gt=0"` // automaton states per action
	S             float64 `yaml:"s" validate:"gt=1"`              // specificity, rare Type I branch has probability 1/s
	Threshold     float64 `yaml:"threshold" validate:"gt=0"`      // vote margin where feedback stops
	Features      int     `yaml:"features" validate:"gt=0"`       // input vector length
	Workers       int     `yaml:"workers" validate:"gte=0"`       // 0 sizes the pool from the CPU
	Seed          uint64  `yaml:"seed"`                           // 0 seeds from crypto/rand
}

// Training configures the training loop and its dataset
type Training struct {
	Dataset      string  `yaml:"dataset" validate:"oneof=column xor"`
	Column       int     `yaml:"column" validate:"gte=0"` // label feature of the column dataset
	Noise        float64 `yaml:"noise" validate:"gte=0,lt=1"`
	Samples      int     `yaml:"samples" validate:"gt=0"`
	Epochs       int     `yaml:"epochs" validate:"gte=0"`
	Target       int     `yaml:"target" validate:"gte=0,lte=100"`
	Significance uint8   `yaml:"significance" validate:"lte=99"`
	Shuffle      bool    `yaml:"shuffle"`
	Balance      bool    `yaml:"balance"`
}

// Config is the whole configuration file
type Config struct {
	Machine     HyperParameters `yaml:"machine"`
	Training    Training        `yaml:"training"`
	RunLog      string          `yaml:"run_log"`
	MetricsFile string          `yaml:"metrics_file"`
	LogLevel    string          `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Machine: HyperParameters{
			Clauses:       50,
			MaxActivation: 30,
			S:             4.0,
			Threshold:     30.0,
			Features:      3,
		},
		Training: Training{
			Dataset: "column",
			Column:  1,
			Samples: 200,
			Epochs:  5,
			Target:  100,
			Shuffle: true,
		},
		LogLevel: "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field ranges and the relations between fields
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.Training.Dataset == "column" && c.Training.Column >= c.Machine.Features {
		return errors.Errorf("invalid config: column %d out of range for %d features",
			c.Training.Column, c.Machine.Features)
	}
	if c.Training.Dataset == "xor" && c.Machine.Features < 2 {
		return errors.Errorf("invalid config: xor needs at least 2 features, have %d", c.Machine.Features)
	}
	return nil
}

// Parse reads YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and validates a configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}
