package meadow

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// growthSample checks one plant's overall growth at one playback time.
type growthSample struct {
	Time       float64 `json:"time"`
	Plant      int     `json:"plant"`
	MinOverall float64 `json:"minOverall"`
	MaxOverall float64 `json:"maxOverall"`
}

// scenarioExpect holds the checks a scenario runs against its field.
type scenarioExpect struct {
	PlantCount *int           `json:"plantCount,omitempty"`
	MinPlants  int            `json:"minPlants,omitempty"`
	MaxPlants  int            `json:"maxPlants,omitempty"`
	Growth     []growthSample `json:"growth,omitempty"`
}

// Scenario is a reproducible field description with expectations, loaded
// from JSON. Scenarios drive automated regression runs: the same file
// must produce the same field on every machine, so a scenario failure
// means generation or growth behavior changed.
type Scenario struct {
	Name        string         `json:"name"`
	Seed        int64          `json:"seed"`
	Duration    float64        `json:"duration,omitempty"`
	Generations int            `json:"generations,omitempty"`
	Density     string         `json:"density,omitempty"`
	MaxHeight   float64        `json:"maxHeight,omitempty"`
	Curve       string         `json:"curve,omitempty"`
	Categories  []string       `json:"categories,omitempty"`
	Expect      scenarioExpect `json:"expect"`
}

// ParseScenario parses a JSON scenario. Density and curve names are
// validated here so a bad file fails at load time, not mid-run.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("parse scenario: missing name")
	}
	if _, err := ParseDensity(sc.Density); err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", sc.Name, err)
	}
	if _, err := ParseCurve(sc.Curve); err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", sc.Name, err)
	}
	return &sc, nil
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return ParseScenario(data)
}

// Config converts the scenario into a generation config.
func (sc *Scenario) Config() Config {
	density, _ := ParseDensity(sc.Density)
	curve, _ := ParseCurve(sc.Curve)
	return Config{
		Seed:        sc.Seed,
		Duration:    sc.Duration,
		Generations: sc.Generations,
		Density:     density,
		MaxHeight:   sc.MaxHeight,
		Curve:       curve,
		Categories:  sc.Categories,
	}
}

// Run generates the scenario's field and checks every expectation. The
// field is generated twice and compared, so a run also guards the
// reproducibility contract itself. Returns the first failure.
func (sc *Scenario) Run() error {
	cfg := sc.Config()
	plants := Generate(cfg)
	again := Generate(cfg)
	if !reflect.DeepEqual(plants, again) {
		return fmt.Errorf("scenario %q: generation is not reproducible", sc.Name)
	}

	for i := 1; i < len(plants); i++ {
		if plants[i].Height < plants[i-1].Height {
			return fmt.Errorf("scenario %q: plants not sorted by height at index %d", sc.Name, i)
		}
	}

	if want := sc.Expect.PlantCount; want != nil && len(plants) != *want {
		return fmt.Errorf("scenario %q: plant count %d, want %d", sc.Name, len(plants), *want)
	}
	if min := sc.Expect.MinPlants; min > 0 && len(plants) < min {
		return fmt.Errorf("scenario %q: plant count %d below minimum %d", sc.Name, len(plants), min)
	}
	if max := sc.Expect.MaxPlants; max > 0 && len(plants) > max {
		return fmt.Errorf("scenario %q: plant count %d above maximum %d", sc.Name, len(plants), max)
	}

	phase := DefaultPhaseConfig()
	for _, s := range sc.Expect.Growth {
		if s.Plant < 0 || s.Plant >= len(plants) {
			return fmt.Errorf("scenario %q: growth sample references plant %d of %d", sc.Name, s.Plant, len(plants))
		}
		p := plants[s.Plant]
		g := GrowthAt(s.Time, p.Delay, p.Duration, phase)
		if g.Overall < s.MinOverall || g.Overall > s.MaxOverall {
			return fmt.Errorf("scenario %q: plant %d overall %.3f at t=%.2f outside [%.3f, %.3f]",
				sc.Name, s.Plant, g.Overall, s.Time, s.MinOverall, s.MaxOverall)
		}
	}
	return nil
}
