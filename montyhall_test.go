package montyhall

import (
	"math/rand"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		cfg  Config
		isOK bool
	}{
		{Config{Doors: 3, Trials: 1}, true},
		{Config{Doors: 100, Trials: 100000}, true},
		{Config{Doors: 2, Trials: 1000}, false},
		{Config{Doors: 0, Trials: 1000}, false},
		{Config{Doors: 3, Trials: 0}, false},
		{Config{Doors: 3, Trials: -1}, false},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.isOK && err != nil {
			t.Errorf("Validate(%+v) returned unexpected error: %v", tc.cfg, err)
		} else if !tc.isOK && err == nil {
			t.Errorf("Validate(%+v) did not return an error", tc.cfg)
		}
	}
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	src := NewSource(rand.New(rand.NewSource(1)))
	if _, err := Simulate(Config{Doors: 2, Trials: 100}, src); err == nil {
		t.Error("expected error for 2-door config")
	}
}

func TestSimulateClassicProblem(t *testing.T) {
	src := NewSource(rand.New(rand.NewSource(42)))
	result, err := Simulate(Config{Doors: 3, Trials: 100000}, src)
	if err != nil {
		t.Fatal(err)
	}

	if result.SwitchRate() < 0.64 || result.SwitchRate() > 0.69 {
		t.Errorf("switch rate %.4f outside expected band [0.64, 0.69]", result.SwitchRate())
	}

	if result.StayRate() < 0.31 || result.StayRate() > 0.36 {
		t.Errorf("stay rate %.4f outside expected band [0.31, 0.36]", result.StayRate())
	}
}

func TestSimulateManyDoors(t *testing.T) {
	src := NewSource(rand.New(rand.NewSource(42)))
	result, err := Simulate(Config{Doors: 10, Trials: 100000}, src)
	if err != nil {
		t.Fatal(err)
	}

	// Switching should win (D-1)/D = 0.9 of the time.
	if result.SwitchRate() < 0.88 || result.SwitchRate() > 0.92 {
		t.Errorf("switch rate %.4f outside expected band [0.88, 0.92]", result.SwitchRate())
	}

	if result.StayRate() < 0.08 || result.StayRate() > 0.12 {
		t.Errorf("stay rate %.4f outside expected band [0.08, 0.12]", result.StayRate())
	}
}

func TestSimulateOutcomesAreComplementary(t *testing.T) {
	src := NewSource(rand.New(rand.NewSource(7)))
	result, err := Simulate(Config{Doors: 5, Trials: 1000}, src)
	if err != nil {
		t.Fatal(err)
	}

	if result.SwitchWins+result.StayWins != result.Trials {
		t.Errorf("tallies do not partition the trials: %d switch + %d stay != %d",
			result.SwitchWins, result.StayWins, result.Trials)
	}
}

// fixedSource replays a scripted sequence of draws.
type fixedSource struct {
	draws []int
	i     int
}

func (s *fixedSource) UniformInt(low, high int) int {
	draw := s.draws[s.i%len(s.draws)]
	s.i++
	return draw
}

func TestSimulateScriptedDraws(t *testing.T) {
	// Trials: (prize=1, choice=1) stay wins; (prize=2, choice=3) switch wins;
	// (prize=3, choice=3) stay wins.
	src := &fixedSource{draws: []int{1, 1, 2, 3, 3, 3}}
	result, err := Simulate(Config{Doors: 3, Trials: 3}, src)
	if err != nil {
		t.Fatal(err)
	}

	if result.StayWins != 2 {
		t.Errorf("got %d stay wins, expected 2", result.StayWins)
	}

	if result.SwitchWins != 1 {
		t.Errorf("got %d switch wins, expected 1", result.SwitchWins)
	}
}

func TestZeroValueResultsRates(t *testing.T) {
	var result Results
	if rate := result.SwitchRate(); rate != 0 {
		t.Errorf("got switch rate %v for zero-value results, expected 0", rate)
	}

	if rate := result.StayRate(); rate != 0 {
		t.Errorf("got stay rate %v for zero-value results, expected 0", rate)
	}
}

func TestUniformIntBounds(t *testing.T) {
	src := NewSource(rand.New(rand.NewSource(1)))
	seen := make(map[int]int)
	for i := 0; i < 10000; i++ {
		n := src.UniformInt(1, 3)
		if n < 1 || n > 3 {
			t.Fatalf("draw %d outside [1, 3]", n)
		}
		seen[n]++
	}

	for v := 1; v <= 3; v++ {
		if seen[v] == 0 {
			t.Errorf("value %d was never drawn", v)
		}
	}
}

func BenchmarkSimulate(b *testing.B) {
	src := NewSource(rand.New(rand.NewSource(1)))
	cfg := Config{Doors: 3, Trials: 1000}
	for i := 0; i < b.N; i++ {
		Simulate(cfg, src)
	}
}
