package store

import (
	"context"
	"sync"

	"vegamm/internal/model"
	"vegamm/internal/venue"
	"vegamm/pkg/exception"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Store is the single source of truth for market, asset, market data and
// position facts. Every read and write runs under one mutex acquisition, so
// readers never observe a torn write; freshness across the three feeding
// streams is last-writer-wins only.
type Store struct {
	mu         sync.Mutex
	market     model.Market
	marketData model.MarketData
	assets     map[string]model.Asset
	positions  map[string]model.Position
}

// New fetches the market definition, the latest market data and the full
// asset list from the venue. Any failure leaves no usable store behind; the
// caller treats it as fatal.
func New(ctx context.Context, clt venue.QueryClient, marketID string) (*Store, error) {
	market, err := clt.GetMarket(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch market")
	}
	logs.Infof("market found: %s (%s)", market.Name, market.ID)

	marketData, err := clt.GetLatestMarketData(ctx, marketID)
	if err != nil {
		return nil, errors.Wrap(err, "fetch latest market data")
	}

	assetList, err := clt.ListAssets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch assets")
	}

	assets := make(map[string]model.Asset, len(assetList))
	for _, a := range assetList {
		assets[a.ID] = a
	}

	return &Store{
		market:     market,
		marketData: marketData,
		assets:     assets,
		positions:  make(map[string]model.Position),
	}, nil
}

// Market returns a copy of the market definition.
func (s *Store) Market() model.Market {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market
}

// MarketData returns a copy of the latest market data record.
func (s *Store) MarketData() model.MarketData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marketData
}

// Asset looks up an asset loaded at init. Callers only pass ids enumerated
// from the market definition, so an unknown id means the venue returned an
// inconsistent asset list.
func (s *Store) Asset(id string) (model.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	asset, ok := s.assets[id]
	if !ok {
		return model.Asset{}, errors.Wrap(exception.ErrStoreUnknownAsset, id)
	}
	return asset, nil
}

// Position returns the latest known position for the party. A missing entry
// means no stream update has arrived yet, which is semantically a flat
// position.
func (s *Store) Position(partyID string) (model.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.positions[partyID]
	return p, ok
}

// SavePositions replaces each listed party's entry wholesale.
func (s *Store) SavePositions(positions []model.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range positions {
		s.positions[p.PartyID] = p
	}
}

// SaveMarketData replaces the market data record wholesale.
func (s *Store) SaveMarketData(md model.MarketData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marketData = md
}
