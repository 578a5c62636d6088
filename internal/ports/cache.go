package ports

import (
	"context"

	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
)

// FortuneKey identifies a memoized fortune.
type FortuneKey struct {
	Birth domain.Date
	Day   domain.Date
}

// FortuneCache memoizes fortunes. today is the caller's clock day; only keys
// for today are retained. compute is called at most once per retained key.
type FortuneCache interface {
	GetOrCompute(ctx context.Context, key FortuneKey, today domain.Date, compute func() (domain.Fortune, error)) (domain.Fortune, error)
}
