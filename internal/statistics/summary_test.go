package statistics

import (
	"math"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Mean != 0 || s.CI.Resamples != 0 {
		t.Errorf("expected zero summary for empty batch, got %+v", s)
	}
	if len(s.Tiers) != 0 {
		t.Errorf("expected no tier counts, got %v", s.Tiers)
	}
}

func TestSummarize_SingleMix(t *testing.T) {
	s := Summarize([]float64{42})
	if s.Mean != 42 || s.Min != 42 || s.Max != 42 || s.StdDev != 0 {
		t.Errorf("unexpected summary for one mix: %+v", s)
	}
	if s.CI.Lower != 42 || s.CI.Upper != 42 {
		t.Errorf("expected degenerate interval at 42, got %+v", s.CI)
	}
	if s.Tiers["Robust"] != 1 {
		t.Errorf("expected one Robust mix, got %v", s.Tiers)
	}
}

func TestSummarize_Batch(t *testing.T) {
	strengths := []float64{12, 22.5, 35, 48, 61}
	s := Summarize(strengths)

	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if math.Abs(s.Mean-35.7) > 1e-9 {
		t.Errorf("Mean = %f, want 35.7", s.Mean)
	}
	if s.Min != 12 || s.Max != 61 {
		t.Errorf("Min/Max = %f/%f, want 12/61", s.Min, s.Max)
	}
	if s.StdDev <= 0 {
		t.Errorf("StdDev = %f, want > 0", s.StdDev)
	}
	if s.CI.Lower > s.Mean || s.CI.Upper < s.Mean {
		t.Errorf("interval [%f, %f] should contain the mean %f", s.CI.Lower, s.CI.Upper, s.Mean)
	}
	want := map[string]int{"Low": 1, "Standard": 1, "Robust": 2, "UltraHighPerformance": 1}
	for tier, n := range want {
		if s.Tiers[tier] != n {
			t.Errorf("Tiers[%s] = %d, want %d", tier, s.Tiers[tier], n)
		}
	}
}

func TestSummarize_Reproducible(t *testing.T) {
	strengths := []float64{20, 25, 30, 35, 40}
	a := Summarize(strengths)
	b := Summarize(strengths)
	if a.CI != b.CI {
		t.Errorf("same batch should give identical intervals: %+v vs %+v", a.CI, b.CI)
	}
}

func TestBootstrapMean_IdenticalValues(t *testing.T) {
	ci := BootstrapMean([]float64{30, 30, 30, 30}, 0.95, 42)
	if math.Abs(ci.Lower-30) > 1e-9 || math.Abs(ci.Upper-30) > 1e-9 {
		t.Errorf("expected [30, 30] for identical values, got [%f, %f]", ci.Lower, ci.Upper)
	}
}

func TestBootstrapMean_NarrowerAtHigherN(t *testing.T) {
	small := []float64{30, 50, 70}
	large := []float64{30, 40, 50, 60, 70, 30, 40, 50, 60, 70,
		30, 40, 50, 60, 70, 30, 40, 50, 60, 70}

	wSmall := BootstrapMean(small, 0.95, 42)
	wLarge := BootstrapMean(large, 0.95, 42)
	if wLarge.Upper-wLarge.Lower >= wSmall.Upper-wSmall.Lower {
		t.Errorf("larger batch should yield a narrower interval: small=%+v large=%+v", wSmall, wLarge)
	}
}

func TestBootstrapMean_WiderAtHigherLevel(t *testing.T) {
	values := []float64{10, 30, 50, 70, 90, 20, 40, 60, 80, 100}
	ci90 := BootstrapMean(values, 0.90, 42)
	ci99 := BootstrapMean(values, 0.99, 42)
	if ci99.Upper-ci99.Lower <= ci90.Upper-ci90.Lower {
		t.Errorf("99%% interval should be wider than 90%%: %+v vs %+v", ci90, ci99)
	}
	if ci90.Resamples != Resamples {
		t.Errorf("Resamples = %d, want %d", ci90.Resamples, Resamples)
	}
}
