package sat

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeDPLL Mode = "dpll"
	ModeCDCL Mode = "cdcl"
)

// Options control a single solver run. The zero value solves in CDCL mode
// with restarts, clause deletion and the pure-literal pass disabled; use
// DefaultOptions for the tuned configuration.
type Options struct {
	Mode Mode `mapstructure:"mode"`

	// TimeoutSeconds bounds the wall-clock search time; <= 0 means no
	// bound. MaxDecisions bounds the number of branching decisions; 0
	// means no bound. Both are checked once per controller iteration,
	// before each decision.
	TimeoutSeconds float64 `mapstructure:"timeoutSeconds"`
	MaxDecisions   int64   `mapstructure:"maxDecisions"`

	// VarDecay and ClauseDecay grow the activity bump increments after
	// each conflict; 0 selects the defaults (0.95 and 0.999).
	VarDecay    float64 `mapstructure:"varDecay"`
	ClauseDecay float64 `mapstructure:"clauseDecay"`

	// RestartBase scales the Luby restart sequence, in conflicts; 0
	// disables restarts. CDCL only.
	RestartBase int `mapstructure:"restartBase"`

	// MaxLearned caps the live learned clauses before the lowest-activity
	// half is deleted; 0 disables deletion. CDCL only.
	MaxLearned int `mapstructure:"maxLearned"`

	// PureLiterals enables the pure-literal pre-pass. DPLL only.
	PureLiterals bool `mapstructure:"pureLiterals"`

	// Verbose emits a debug trace of the search through the logger.
	Verbose bool `mapstructure:"verbose"`

	Logger logrus.FieldLogger `mapstructure:"-"`
}

func DefaultOptions() Options {
	return Options{
		Mode:         ModeCDCL,
		VarDecay:     0.95,
		ClauseDecay:  0.999,
		RestartBase:  100,
		MaxLearned:   1000,
		PureLiterals: true,
	}
}

// OptionsFromJson reads options from a JSON file, filling unset fields from
// DefaultOptions.
func OptionsFromJson(path string) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return Options{}, fmt.Errorf("cannot parse options file %v: %w", path, err)
	}

	opts := DefaultOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return Options{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("invalid options in %v: %w", path, err)
	}
	return opts, nil
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeCDCL
	}
	if o.VarDecay == 0 {
		o.VarDecay = 0.95
	}
	if o.ClauseDecay == 0 {
		o.ClauseDecay = 0.999
	}
	return o
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	logger := logrus.New()
	if o.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetOutput(io.Discard)
	}
	return logger
}
