package valueobjects

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ID strategies accepted by NewIDGenerator
const (
	IDStrategyTime     = "time"
	IDStrategySequence = "sequence"
	IDStrategyUUID     = "uuid"
)

// IDGenerator hands out identifiers for new lists and todos
type IDGenerator interface {
	NewID() string
}

// TimeIDGenerator produces millisecond timestamps. When two calls land in the
// same millisecond the second one is bumped forward, so values are strictly
// increasing for the lifetime of the generator.
type TimeIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewTimeIDGenerator creates a generator backed by the wall clock
func NewTimeIDGenerator() *TimeIDGenerator {
	return NewTimeIDGeneratorWithClock(time.Now)
}

// NewTimeIDGeneratorWithClock creates a generator reading time from now
func NewTimeIDGeneratorWithClock(now func() time.Time) *TimeIDGenerator {
	return &TimeIDGenerator{now: now}
}

// NewID implements IDGenerator
func (g *TimeIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// SequenceIDGenerator produces zero-padded counters: 0000000001, 0000000002, ...
type SequenceIDGenerator struct {
	mu   sync.Mutex
	next int64
}

// NewSequenceIDGenerator creates a counter whose first value is start
func NewSequenceIDGenerator(start int64) *SequenceIDGenerator {
	if start < 1 {
		start = 1
	}
	return &SequenceIDGenerator{next: start}
}

// NewID implements IDGenerator
func (g *SequenceIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := fmt.Sprintf("%010d", g.next)
	g.next++
	return id
}

// UUIDGenerator produces random v4 UUIDs
type UUIDGenerator struct{}

// NewID implements IDGenerator
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewIDGenerator builds the generator for a configured strategy. For the
// sequence strategy, start is the first value handed out.
func NewIDGenerator(strategy string, start int64) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategyTime:
		return NewTimeIDGenerator(), nil
	case IDStrategySequence:
		return NewSequenceIDGenerator(start), nil
	case IDStrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
