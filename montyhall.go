// Package montyhall simulates the Monty Hall door-selection problem,
// generalized to N doors. Each trial places a prize behind a uniformly
// random door and lets the contestant pick a door uniformly at random;
// the host then reveals every non-prize, non-chosen door, leaving exactly
// one alternative to switch to.
package montyhall

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// MinDoors is the smallest door count for which the reveal mechanic
// is well-defined: the host needs at least one door to open that is
// neither the prize nor the contestant's choice.
const MinDoors = 3

// Config holds the parameters for a simulation run.
type Config struct {
	// Doors is the number of doors per trial. Must be >= MinDoors.
	Doors int
	// Trials is the number of independent trials to run. Must be >= 1.
	Trials int
}

// Validate checks the configuration before any trial runs.
func (c Config) Validate() error {
	if c.Doors < MinDoors {
		return errors.Errorf("number of doors must be >= %d, got %d", MinDoors, c.Doors)
	}

	if c.Trials < 1 {
		return errors.Errorf("number of trials must be >= 1, got %d", c.Trials)
	}

	return nil
}

// Results tallies trial outcomes under the two fixed policies.
type Results struct {
	// SwitchWins is the number of trials won by switching doors.
	SwitchWins int
	// StayWins is the number of trials won by keeping the initial choice.
	StayWins int
	// Trials is the total number of trials run.
	Trials int
}

// SwitchRate returns the fraction of trials won by switching, or zero if
// no trials were run.
func (r Results) SwitchRate() float64 {
	if r.Trials == 0 {
		return 0
	}

	return float64(r.SwitchWins) / float64(r.Trials)
}

// StayRate returns the fraction of trials won by staying, or zero if no
// trials were run.
func (r Results) StayRate() float64 {
	if r.Trials == 0 {
		return 0
	}

	return float64(r.StayWins) / float64(r.Trials)
}

// Simulate runs cfg.Trials independent trials and tallies the outcome of
// both policies. Both tallies come from the same (prize, choice) draw per
// trial, so they are complementary: staying wins exactly when the initial
// choice is the prize door, and switching wins otherwise, because the host
// reveals every other non-prize door.
func Simulate(cfg Config, src Source) (Results, error) {
	if err := cfg.Validate(); err != nil {
		return Results{}, errors.Wrap(err, "invalid simulation config")
	}

	progressEvery := cfg.Trials / 10
	result := Results{Trials: cfg.Trials}
	for i := 1; i <= cfg.Trials; i++ {
		prize := src.UniformInt(1, cfg.Doors)
		choice := src.UniformInt(1, cfg.Doors)
		if choice == prize {
			result.StayWins++
		} else {
			result.SwitchWins++
		}

		if progressEvery > 0 && i%progressEvery == 0 {
			glog.V(1).Infof("Completed %d of %d trials: %d switch wins, %d stay wins",
				i, cfg.Trials, result.SwitchWins, result.StayWins)
		}
	}

	return result, nil
}
