package webapi

import (
	"errors"
	"sync"
)

// ErrPredictionNotFound is returned when an ID does not match any kept
// prediction.
var ErrPredictionNotFound = errors.New("prediction not found")

// DefaultHistorySize is the number of predictions a MemoryStore keeps.
const DefaultHistorySize = 50

// PredictionStore keeps recently served predictions.
type PredictionStore interface {
	// Add records a prediction, evicting the oldest when full.
	Add(rec PredictionRecord)
	// List returns kept predictions, newest first.
	List() []PredictionRecord
	// Get returns a single prediction by request ID.
	Get(id string) (*PredictionRecord, error)
}

// MemoryStore is a fixed-size in-memory PredictionStore.
type MemoryStore struct {
	mu      sync.RWMutex
	records []PredictionRecord
	size    int
}

// NewMemoryStore creates a store holding at most size records. A
// non-positive size uses DefaultHistorySize.
func NewMemoryStore(size int) *MemoryStore {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &MemoryStore{size: size}
}

func (s *MemoryStore) Add(rec PredictionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if over := len(s.records) - s.size; over > 0 {
		s.records = append(s.records[:0:0], s.records[over:]...)
	}
}

func (s *MemoryStore) List() []PredictionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PredictionRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	return out
}

func (s *MemoryStore) Get(id string) (*PredictionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].RequestID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, ErrPredictionNotFound
}
