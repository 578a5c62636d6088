package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a 24h ticker snapshot for a trading pair.
type Quote struct {
	Symbol    string
	Price     decimal.Decimal
	Change24h decimal.Decimal // percent
	UpdatedAt time.Time
}

// PriceFeed provides the latest quote for the ticker display.
type PriceFeed interface {
	Latest(ctx context.Context) (Quote, error)
}
