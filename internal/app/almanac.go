package app

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
	"github.com/evan-taojiangcb/huangli-programmer/internal/ports"
)

// MaxNameLength bounds the echoed display name, in runes.
const MaxNameLength = 64

// ReadFortuneRequest is the application-level input (no HTTP types).
type ReadFortuneRequest struct {
	Name      string
	BirthDate string
	Gender    string
	// Date overrides today when set (YYYY-MM-DD).
	Date string
}

// ReadFortuneResponse is the application-level output.
type ReadFortuneResponse struct {
	Reading   domain.Reading
	ShareText string
	LatencyMS int64
}

// AlmanacService validates user input, resolves the evaluation day and
// serves memoized fortunes.
type AlmanacService struct {
	cache ports.FortuneCache
	clock ports.Clock
	loc   *time.Location
}

func NewAlmanacService(cache ports.FortuneCache, clock ports.Clock, loc *time.Location) *AlmanacService {
	if loc == nil {
		loc = time.Local
	}
	return &AlmanacService{
		cache: cache,
		clock: clock,
		loc:   loc,
	}
}

// Today is the evaluation day in the service's time zone.
func (s *AlmanacService) Today() domain.Date {
	return domain.DateOf(s.clock.Now().In(s.loc))
}

func (s *AlmanacService) ReadFortune(ctx context.Context, req ReadFortuneRequest) (ReadFortuneResponse, error) {
	info, err := parseBirthInfo(req)
	if err != nil {
		return ReadFortuneResponse{}, err
	}

	today := s.Today()
	day := today
	if req.Date != "" {
		day, err = domain.ParseDate(req.Date)
		if err != nil {
			return ReadFortuneResponse{}, fmt.Errorf("evaluation date: %w", err)
		}
	}

	start := time.Now()
	fortune, err := s.cache.GetOrCompute(ctx, ports.FortuneKey{Birth: info.BirthDate, Day: day}, today, func() (domain.Fortune, error) {
		return domain.ComputeFortune(info.BirthDate, day), nil
	})
	if err != nil {
		return ReadFortuneResponse{}, fmt.Errorf("compute fortune: %w", err)
	}

	return ReadFortuneResponse{
		Reading:   domain.NewReading(info, day, fortune),
		ShareText: domain.ShareText(fortune),
		LatencyMS: time.Since(start).Milliseconds(),
	}, nil
}

func parseBirthInfo(req ReadFortuneRequest) (domain.BirthInfo, error) {
	birth, err := domain.ParseDate(req.BirthDate)
	if err != nil {
		return domain.BirthInfo{}, fmt.Errorf("birth date: %w", err)
	}

	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		return domain.BirthInfo{}, err
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return domain.BirthInfo{}, fmt.Errorf("%w: name must be at most %d characters", domain.ErrInvalidInput, MaxNameLength)
	}

	return domain.BirthInfo{
		Name:      name,
		BirthDate: birth,
		Gender:    gender,
	}, nil
}
