package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang/glog"

	"github.com/chrissprague/montyhall"
)

// envDefaults are the flag defaults, overridable from the environment.
type envDefaults struct {
	Doors  int `env:"MONTYHALL_DOORS" envDefault:"3"`
	Trials int `env:"MONTYHALL_TRIALS" envDefault:"100000"`
}

func main() {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		glog.Exitf("Unable to parse environment: %v", err)
	}

	doors := flag.Int("doors", defaults.Doors, "Number of doors per trial")
	trials := flag.Int("trials", defaults.Trials, "Number of trials to run")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from crypto/rand)")
	flag.Parse()

	cfg := montyhall.Config{Doors: *doors, Trials: *trials}
	if err := cfg.Validate(); err != nil {
		glog.Exitf("Invalid configuration: %v", err)
	}

	src, err := newSource(*seed)
	if err != nil {
		glog.Exitf("Unable to initialize random source: %v", err)
	}

	glog.Infof("Running %d trials with %d doors", cfg.Trials, cfg.Doors)
	start := time.Now()
	result, err := montyhall.Simulate(cfg, src)
	if err != nil {
		glog.Exit(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Number of simulations: %d\n", result.Trials)
	fmt.Printf("Number of doors per simulation: %d\n", cfg.Doors)
	fmt.Printf("Success rate when switching doors: %.2f%%\n", 100*result.SwitchRate())
	fmt.Printf("Success rate when NOT switching doors: %.2f%%\n", 100*result.StayRate())
	glog.Infof("Completed %d trials in %s (%.0f trials/sec)",
		result.Trials, elapsed, float64(result.Trials)/elapsed.Seconds())
}

func newSource(seed int64) (montyhall.Source, error) {
	if seed == 0 {
		return montyhall.NewSeededSource()
	}

	return montyhall.NewSource(rand.New(rand.NewSource(seed))), nil
}
