package reporting

import (
	"fmt"
	"math"
	"strings"
)

// Tier is the qualitative strength class of a predicted mix.
// Tiers are ordered: TierLow < TierStandard < TierRobust < TierUltraHigh.
type Tier int

const (
	TierLow Tier = iota
	TierStandard
	TierRobust
	TierUltraHigh
)

// Lower bounds in MPa. Each bound belongs to the tier above it.
const (
	StandardThreshold  = 20.0
	RobustThreshold    = 35.0
	UltraHighThreshold = 50.0
)

var tierInfo = [...]struct {
	name  string
	label string
	color string
}{
	TierLow:       {"Low", "Low strength", "gray"},
	TierStandard:  {"Standard", "Standard", "green"},
	TierRobust:    {"Robust", "Robust", "blue"},
	TierUltraHigh: {"UltraHighPerformance", "Ultra-high performance", "gold"},
}

// ClassifyStrength maps a predicted compressive strength in MPa to a tier.
// Every float maps to exactly one tier; NaN is treated as Low.
func ClassifyStrength(mpa float64) Tier {
	switch {
	case math.IsNaN(mpa):
		return TierLow
	case mpa >= UltraHighThreshold:
		return TierUltraHigh
	case mpa >= RobustThreshold:
		return TierRobust
	case mpa >= StandardThreshold:
		return TierStandard
	default:
		return TierLow
	}
}

func (t Tier) valid() bool { return t >= TierLow && t <= TierUltraHigh }

func (t Tier) String() string {
	if !t.valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierInfo[t].name
}

// Label is the human-readable tier name shown next to the estimate.
func (t Tier) Label() string {
	if !t.valid() {
		return t.String()
	}
	return tierInfo[t].label
}

// Color is the display colour name used by the web page and terminal output.
func (t Tier) Color() string {
	if !t.valid() {
		return ""
	}
	return tierInfo[t].color
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	s := string(b)
	for i, info := range tierInfo {
		if strings.EqualFold(s, info.name) {
			*t = Tier(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", s)
}
