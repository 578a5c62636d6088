package pricefeed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/evan-taojiangcb/huangli-programmer/internal/ports"
)

const (
	Symbol = "BTC/USDT"

	priceSpread = 5000 // quotes fall in [base, base+priceSpread)
	changeRange = 10   // 24h change falls in [-changeRange/2, changeRange/2)
)

// Float64Source yields values in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// MockFeed fabricates BTC/USDT quotes. There is no market integration; the
// ticker on the page is decorative.
type MockFeed struct {
	mu    sync.RWMutex
	quote ports.Quote

	base   decimal.Decimal
	src    Float64Source
	now    func() time.Time
	logger *slog.Logger
}

func NewMockFeed(base decimal.Decimal, src Float64Source, logger *slog.Logger) *MockFeed {
	if logger == nil {
		logger = slog.Default()
	}
	f := &MockFeed{
		base:   base,
		src:    src,
		now:    time.Now,
		logger: logger,
	}
	f.refresh()
	return f
}

func (f *MockFeed) Latest(_ context.Context) (ports.Quote, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.quote, nil
}

// Run refreshes the quote every interval until ctx is done.
func (f *MockFeed) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f.refresh()
			f.logger.DebugContext(ctx, "ticker refreshed", "symbol", Symbol)
		}
	}
}

func (f *MockFeed) refresh() {
	price := f.base.Add(decimal.NewFromFloat(f.src.Float64() * priceSpread)).Round(2)
	change := decimal.NewFromFloat((f.src.Float64() - 0.5) * changeRange).Round(2)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.quote = ports.Quote{
		Symbol:    Symbol,
		Price:     price,
		Change24h: change,
		UpdatedAt: f.now().UTC(),
	}
}
