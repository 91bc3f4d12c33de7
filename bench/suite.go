package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite describes a benchmark ladder loaded from a YAML file:
//
//	runs: 5
//	limits:
//	  - 1000
//	  - 100000
//	  - 1000000
type Suite struct {
	Runs   int     `yaml:"runs"`
	Limits []int64 `yaml:"limits"`
}

// DefaultSuite is the ladder used when no suite file is given. It ends at
// the reference benchmark limit.
func DefaultSuite() Suite {
	return Suite{
		Runs:   5,
		Limits: []int64{1000, 10_000, 100_000, 1_000_000},
	}
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("failed to parse suite file: %w", err)
	}

	if suite.Runs <= 0 {
		suite.Runs = DefaultSuite().Runs
	}
	if len(suite.Limits) == 0 {
		return Suite{}, fmt.Errorf("suite file %s lists no limits", path)
	}
	for _, limit := range suite.Limits {
		if limit < 0 {
			return Suite{}, fmt.Errorf("suite file %s contains negative limit %d", path, limit)
		}
	}

	return suite, nil
}

// Run measures every limit in the suite.
func (s Suite) Run() ([]Result, error) {
	return MeasureAll(s.Limits, s.Runs)
}
