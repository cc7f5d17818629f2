package venue

import (
	"context"

	"vegamm/internal/model"
)

// QueryClient answers point-in-time questions against the venue data node.
type QueryClient interface {
	GetMarket(ctx context.Context, marketID string) (model.Market, error)
	GetLatestMarketData(ctx context.Context, marketID string) (model.MarketData, error)
	ListAssets(ctx context.Context) ([]model.Asset, error)
}

// MarketDataItem is one delivery on a market data stream. Err is set for a
// transient per-item failure; the stream itself stays live.
type MarketDataItem struct {
	Data model.MarketData
	Err  error
}

// PositionsItem is one delivery on a positions stream. Snapshot and update
// deliveries both carry the full replacement records for the listed parties.
type PositionsItem struct {
	Positions []model.Position
	Err       error
}

// StreamClient opens long-lived server streams. An error from the open call
// is fatal for the subscription; afterwards the returned channel delivers
// items until the server closes the stream, at which point it is closed.
type StreamClient interface {
	ObserveMarketData(ctx context.Context, marketID string) (<-chan MarketDataItem, error)
	ObservePositions(ctx context.Context, partyID, marketID string) (<-chan PositionsItem, error)
}
