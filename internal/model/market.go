package model

import (
	"vegamm/internal/model/enum"
	"vegamm/pkg/exception"
)

// Market is the static definition of the traded instrument, fetched once at
// startup and immutable for the process lifetime.
type Market struct {
	ID                     string
	Name                   string
	DecimalPlaces          uint32
	PositionDecimalPlaces  uint32
	Product                enum.Product
	ProductSettlementAsset string
}

// SettlementAsset returns the asset the market settles in. Spot markets have
// no single settlement asset and are not supported by this agent.
func (m Market) SettlementAsset() (string, error) {
	switch m.Product {
	case enum.ProductFuture, enum.ProductPerpetual:
		return m.ProductSettlementAsset, nil
	default:
		return "", exception.ErrVenueUnsupportedProduct
	}
}

// Asset identifies a settlement asset and its decimal scale.
type Asset struct {
	ID       string
	Symbol   string
	Decimals uint32
}

// MarketData is the latest venue-computed statistics for the market. Prices
// are decimal integer strings in venue price precision and may exceed the
// native 64-bit range.
type MarketData struct {
	MarketID       string
	BestBidPrice   string
	BestOfferPrice string
	MarkPrice      string
}

// Position is one account's net exposure in the market. OpenVolume sign is
// the direction, magnitude is in market position precision.
type Position struct {
	PartyID           string
	MarketID          string
	OpenVolume        int64
	AverageEntryPrice string
}
