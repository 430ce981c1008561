// Package session holds the Idle/Predicted state of one interactive mix
// design session.
package session

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/prediction"
)

// State is the session's position in the Idle/Predicted cycle.
type State string

const (
	// StateIdle: inputs shown with the live ratio, no estimate.
	StateIdle State = "idle"
	// StatePredicted: the last triggered prediction is shown.
	StatePredicted State = "predicted"
)

// Predictor is satisfied by *prediction.Service and *prediction.Invoker.
type Predictor interface {
	Predict(in mix.MixInputs) (*prediction.Result, error)
}

// View is a snapshot of the session for rendering. It shares nothing with
// the session.
type View struct {
	State  State
	Inputs mix.MixInputs
	Ratio  mix.RatioEvaluation
	Result *prediction.Result
	// Err is the failure from the last Trigger, if any.
	Err error
}

// Session transitions only on Edit and Trigger.
type Session struct {
	mu        sync.Mutex
	predictor Predictor
	logger    Logger
	state     State
	inputs    mix.MixInputs
	ratio     mix.RatioEvaluation
	result    *prediction.Result
	err       error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger records session events to l.
func WithLogger(l Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New starts an Idle session with the given inputs.
func New(p Predictor, in mix.MixInputs, opts ...Option) *Session {
	s := &Session{
		predictor: p,
		logger:    NopLogger{},
		state:     StateIdle,
		inputs:    in,
		ratio:     mix.EvaluateRatio(in),
	}
	for _, o := range opts {
		o(s)
	}
	s.log(NewEvent(EventSessionStart, MixData(s.inputs, s.ratio)))
	return s
}

// Edit replaces the inputs, recomputes the ratio and discards any shown
// prediction.
func (s *Session) Edit(in mix.MixInputs) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inputs = in
	s.ratio = mix.EvaluateRatio(in)
	s.result = nil
	s.err = nil
	s.state = StateIdle
	s.log(NewEvent(EventMixEdited, MixData(s.inputs, s.ratio)))
	return s.view()
}

// Trigger runs a prediction on the current inputs. On failure the session
// stays Idle and the error is returned.
func (s *Session) Trigger() (*prediction.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.predictor.Predict(s.inputs)
	if err != nil {
		s.result = nil
		s.err = err
		s.state = StateIdle
		s.log(NewEvent(EventError, ErrorData(err.Error(), nil)))
		return nil, err
	}

	s.result = res
	s.err = nil
	s.state = StatePredicted
	s.log(NewEvent(EventPrediction, PredictionData(res)))
	return copyResult(res), nil
}

// View returns the current snapshot.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() View {
	return View{
		State:  s.state,
		Inputs: s.inputs,
		Ratio:  s.ratio,
		Result: copyResult(s.result),
		Err:    s.err,
	}
}

func (s *Session) log(ev Event) {
	if err := s.logger.Log(ev); err != nil {
		slog.Warn("writing session event", "type", ev.Type, "error", err)
	}
}

func copyResult(r *prediction.Result) *prediction.Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Explanation = slices.Clone(r.Explanation)
	return &c
}
