package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/evan-taojiangcb/huangli-programmer/internal/ports"
)

// Trend is the direction shown next to the ticker price.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// flatBand is the absolute 24h change, in percent, reported as flat.
var flatBand = decimal.RequireFromString("0.1")

// TickerResponse is the quote plus its display trend.
type TickerResponse struct {
	Quote ports.Quote
	Trend Trend
}

// TickerService reads the mock market feed.
type TickerService struct {
	feed ports.PriceFeed
}

func NewTickerService(feed ports.PriceFeed) *TickerService {
	return &TickerService{feed: feed}
}

func (s *TickerService) Latest(ctx context.Context) (TickerResponse, error) {
	q, err := s.feed.Latest(ctx)
	if err != nil {
		return TickerResponse{}, fmt.Errorf("latest quote: %w", err)
	}
	return TickerResponse{Quote: q, Trend: trendOf(q.Change24h)}, nil
}

func trendOf(change decimal.Decimal) Trend {
	switch {
	case change.Abs().LessThan(flatBand):
		return TrendFlat
	case change.IsPositive():
		return TrendUp
	default:
		return TrendDown
	}
}
