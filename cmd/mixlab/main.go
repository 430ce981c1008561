package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Prediction (or command) succeeded
	ExitPredictionFailed = 1 // Inputs were rejected or the model failed on them
	ExitError            = 2 // Configuration or artifact-load error
)

// PredictionFailureError indicates that the model was available but one or
// more predictions could not be produced.
type PredictionFailureError struct {
	Message string
	Err     error
}

func (e *PredictionFailureError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *PredictionFailureError) Unwrap() error { return e.Err }

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var predictionErr *PredictionFailureError
	if errors.As(err, &predictionErr) {
		return ExitPredictionFailed
	}
	// All other errors are configuration/runtime errors
	return ExitError
}
