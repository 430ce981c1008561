// Package statistics summarizes a batch of strength estimates.
package statistics

import (
	"math"
	"math/rand"
	"slices"

	"github.com/spboyer/mixlab/internal/reporting"
)

// Interval is a bootstrap confidence interval for the mean strength.
type Interval struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Level     float64 `json:"level"`
	Resamples int     `json:"resamples"`
}

// Summary describes the strengths predicted for a batch of mixes.
type Summary struct {
	Count  int            `json:"count"`
	Mean   float64        `json:"mean"`
	StdDev float64        `json:"stdDev"`
	Min    float64        `json:"min"`
	Max    float64        `json:"max"`
	CI     Interval       `json:"ci"`
	Tiers  map[string]int `json:"tiers"`
}

// Resamples is the number of bootstrap resamples behind Summary.CI.
const Resamples = 10000

// seed keeps batch summaries reproducible from run to run.
const seed = 7

// Summarize computes descriptive statistics and a 95% bootstrap interval for
// the mean. Tiers are counted from the strengths with the standard
// thresholds. An empty batch yields a zero Summary.
func Summarize(strengths []float64) Summary {
	s := Summary{Count: len(strengths), Tiers: make(map[string]int)}
	if len(strengths) == 0 {
		return s
	}
	for _, v := range strengths {
		s.Tiers[reporting.ClassifyStrength(v).String()]++
	}
	s.Mean = mean(strengths)
	s.StdDev = stdDev(strengths, s.Mean)
	s.Min = slices.Min(strengths)
	s.Max = slices.Max(strengths)
	s.CI = BootstrapMean(strengths, 0.95, seed)
	return s
}

// BootstrapMean computes a percentile bootstrap interval for the mean of
// values. Fewer than two values give a degenerate interval at the mean.
func BootstrapMean(values []float64, level float64, seed int64) Interval {
	n := len(values)
	m := mean(values)
	if n < 2 {
		return Interval{Lower: m, Upper: m, Level: level}
	}

	rng := rand.New(rand.NewSource(seed))
	means := make([]float64, Resamples)
	sample := make([]float64, n)
	for i := range means {
		for j := range sample {
			sample[j] = values[rng.Intn(n)]
		}
		means[i] = mean(sample)
	}
	slices.Sort(means)

	alpha := 1.0 - level
	lo := int(math.Floor(alpha / 2.0 * float64(Resamples)))
	hi := min(int(math.Floor((1.0-alpha/2.0)*float64(Resamples))), Resamples-1)
	return Interval{
		Lower:     means[lo],
		Upper:     means[hi],
		Level:     level,
		Resamples: Resamples,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the sample standard deviation; zero for fewer than two values.
func stdDev(values []float64, m float64) float64 {
	if len(values) < 2 {
		return 0
	}
	ss := 0.0
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
