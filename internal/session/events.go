package session

import (
	"time"

	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/prediction"
)

// EventType identifies the kind of session event.
type EventType string

const (
	EventSessionStart EventType = "session_start"
	EventMixEdited    EventType = "mix_edited"
	EventPrediction   EventType = "prediction"
	EventError        EventType = "error"
)

// Event is a single timestamped entry in a session log.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      EventType      `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
}

// NewEvent creates an event with the current timestamp.
func NewEvent(t EventType, data map[string]any) Event {
	return Event{
		Timestamp: time.Now().UTC(),
		Type:      t,
		Data:      data,
	}
}

// MixData returns event data describing the current inputs and ratio.
func MixData(in mix.MixInputs, ratio mix.RatioEvaluation) map[string]any {
	return map[string]any{
		"cement":           in.Cement,
		"slag":             in.Slag,
		"fly_ash":          in.FlyAsh,
		"superplasticizer": in.Superplasticizer,
		"water":            in.Water,
		"age":              in.Age,
		"ratio":            ratio.Ratio,
		"ratio_status":     string(ratio.Status),
	}
}

// PredictionData returns event data for a completed prediction.
func PredictionData(res *prediction.Result) map[string]any {
	return map[string]any{
		"strength": res.Strength,
		"tier":     res.Tier.String(),
	}
}

// ErrorData returns event data for an error.
func ErrorData(message string, details map[string]any) map[string]any {
	d := map[string]any{
		"message": message,
	}
	for k, v := range details {
		d[k] = v
	}
	return d
}
