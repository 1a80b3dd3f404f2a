package chart

import (
	"fmt"
	"math"
)

// ScoreConfig describes the linear log-odds scaling of probabilities into scores.
type ScoreConfig struct {
	// Base is the score given at odds Odds
	Base float64 `yaml:"base"`
	// PDO is the number of points that doubles the odds
	PDO  float64 `yaml:"pdo"`
	Odds float64 `yaml:"odds"`

	MinProbability float64 `yaml:"min_probability"`
	MaxProbability float64 `yaml:"max_probability"`
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Base:           600,
		PDO:            20,
		Odds:           19,
		MinProbability: 1e-8,
		MaxProbability: 1 - 1e-7,
	}
}

func (c ScoreConfig) Validate() error {
	switch {
	case c.Odds <= 0:
		return fmt.Errorf("odds must be positive, got %v", c.Odds)
	case c.MinProbability <= 0 || c.MaxProbability >= 1 || c.MinProbability >= c.MaxProbability:
		return fmt.Errorf("probability bounds must satisfy 0 < min < max < 1, got [%v, %v]", c.MinProbability, c.MaxProbability)
	}
	return nil
}

// Score maps a bad probability to a score, higher scores meaning lower risk.
func (c ScoreConfig) Score(p float64) float64 {
	p = math.Min(math.Max(p, c.MinProbability), c.MaxProbability)
	odds := (1 - p) / p
	return c.Base + c.PDO*(math.Log(odds)-math.Log(c.Odds))/math.Ln2
}

func (c ScoreConfig) Scores(probabilities []float64) []float64 {
	scores := make([]float64, len(probabilities))
	for i, p := range probabilities {
		scores[i] = c.Score(p)
	}
	return scores
}
