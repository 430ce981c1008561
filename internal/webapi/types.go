package webapi

import (
	"time"

	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/reporting"
)

// HealthResponse is the health check response. ModelError carries the
// blocking load error shown as a banner by the page.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	ModelLoaded bool   `json:"modelLoaded"`
	ModelError  string `json:"modelError,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
}

// FormResponse describes the mix form.
type FormResponse struct {
	mix.FormSpec
	Features           []string `json:"features"`
	InterpretationHTML string   `json:"interpretationHtml"`
}

// PredictResponse is the API response for one prediction.
type PredictResponse struct {
	RequestID   string                        `json:"requestId"`
	Strength    float64                       `json:"strength"`
	Tier        reporting.Tier                `json:"tier"`
	TierLabel   string                        `json:"tierLabel"`
	TierColor   string                        `json:"tierColor"`
	Explanation []reporting.FeatureImportance `json:"explanation"`
	Ratio       mix.RatioEvaluation           `json:"ratio"`
}

// PredictionRecord is a served prediction kept for the history view.
type PredictionRecord struct {
	PredictResponse
	Inputs    mix.MixInputs `json:"inputs"`
	Timestamp time.Time     `json:"timestamp"`
}

// ErrorResponse is returned for errors. Fields is set for validation
// failures and Kind for artifact load failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
	Kind   string            `json:"kind,omitempty"`
}
