package store

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// ID strategies accepted by NewIDGenerator
const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

// IDGenerator hands out record ids. Ids from one generator never repeat.
type IDGenerator interface {
	Next() string
}

// UUIDs generates random version 4 UUIDs
type UUIDs struct{}

// Next returns a new random UUID
func (UUIDs) Next() string {
	return uuid.New().String()
}

// SequenceIDs generates increasing decimal ids: "1", "2", "3"...
// Ids observed while loading fixtures move the counter forward so that
// generated ids never reuse them.
type SequenceIDs struct {
	mu   sync.Mutex
	last uint64
}

// Next returns the next id in the sequence
func (s *SequenceIDs) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return strconv.FormatUint(s.last, 10)
}

// Observe advances the counter past id when id is numeric
func (s *SequenceIDs) Observe(id string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > s.last {
		s.last = n
	}
}

// NewIDGenerator returns a factory producing one generator per collection
func NewIDGenerator(strategy string) (func() IDGenerator, error) {
	switch strategy {
	case "", IDStrategyUUID:
		return func() IDGenerator { return UUIDs{} }, nil
	case IDStrategySequence:
		return func() IDGenerator { return &SequenceIDs{} }, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
