package cache

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
	"github.com/evan-taojiangcb/huangli-programmer/internal/ports"
)

// DefaultMaxEntries is used when NewMemoryStore is given a non-positive bound.
const DefaultMaxEntries = 4096

// MemoryStore memoizes fortunes for the caller's current day. Keys for any
// other day (date overrides) are computed but not retained, and a change of
// day drops everything held for the previous one.
type MemoryStore struct {
	mu      sync.Mutex
	day     domain.Date
	entries map[ports.FortuneKey]domain.Fortune
	max     int

	group  singleflight.Group
	logger *slog.Logger
}

func NewMemoryStore(maxEntries int, logger *slog.Logger) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStore{
		entries: make(map[ports.FortuneKey]domain.Fortune),
		max:     maxEntries,
		logger:  logger,
	}
}

func (s *MemoryStore) GetOrCompute(ctx context.Context, key ports.FortuneKey, today domain.Date, compute func() (domain.Fortune, error)) (domain.Fortune, error) {
	if key.Day != today {
		return compute()
	}

	if f, ok := s.get(key); ok {
		return clone(f), nil
	}

	v, err, _ := s.group.Do(key.Birth.String()+"@"+key.Day.String(), func() (any, error) {
		if f, ok := s.get(key); ok {
			return f, nil
		}
		f, err := compute()
		if err != nil {
			return domain.Fortune{}, err
		}
		s.put(ctx, key, f)
		return f, nil
	})
	if err != nil {
		return domain.Fortune{}, err
	}
	return clone(v.(domain.Fortune)), nil
}

// Len reports the number of retained fortunes.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) get(key ports.FortuneKey) (domain.Fortune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.entries[key]
	return f, ok
}

func (s *MemoryStore) put(ctx context.Context, key ports.FortuneKey, f domain.Fortune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key.Day != s.day {
		if n := len(s.entries); n > 0 {
			s.logger.DebugContext(ctx, "fortune cache rotated", "from", s.day.String(), "to", key.Day.String(), "dropped", n)
		}
		clear(s.entries)
		s.day = key.Day
	}

	if len(s.entries) >= s.max {
		for k := range s.entries {
			delete(s.entries, k)
			break
		}
	}
	s.entries[key] = f
}

// clone keeps callers from aliasing the retained slices.
func clone(f domain.Fortune) domain.Fortune {
	f.Suitable = slices.Clone(f.Suitable)
	f.Unsuitable = slices.Clone(f.Unsuitable)
	return f
}
