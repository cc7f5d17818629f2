package store

import (
	"context"

	"vegamm/internal/obs"
	"vegamm/internal/venue"

	"github.com/yanun0323/logs"
)

// RunSync spawns the three synchronization tasks: market data for the market
// and one positions stream per party. The tasks never coordinate with each
// other; the store lock is the only thing preventing torn writes. A task
// whose stream ends exits for good, there is no reconnect here.
func RunSync(ctx context.Context, s *Store, clt venue.StreamClient, marketID, partyA, partyB string, metrics *obs.Metrics) {
	go syncMarketData(ctx, s, clt, marketID, metrics)
	go syncPositions(ctx, s, clt, partyA, marketID, metrics)
	go syncPositions(ctx, s, clt, partyB, marketID, metrics)
}

func syncMarketData(ctx context.Context, s *Store, clt venue.StreamClient, marketID string, metrics *obs.Metrics) {
	logs.Infof("starting market data stream for market %s", marketID)
	ch, err := clt.ObserveMarketData(ctx, marketID)
	if err != nil {
		logs.Errorf("open market data stream, err: %+v", err)
		return
	}

	for item := range ch {
		if item.Err != nil {
			logs.Errorf("market data item, err: %+v", item.Err)
			metrics.IncStreamError()
			continue
		}
		s.SaveMarketData(item.Data)
		metrics.IncStreamApplied()
	}
	logs.Warnf("market data stream for market %s ended", marketID)
}

func syncPositions(ctx context.Context, s *Store, clt venue.StreamClient, partyID, marketID string, metrics *obs.Metrics) {
	logs.Infof("starting positions stream for party %s", partyID)
	ch, err := clt.ObservePositions(ctx, partyID, marketID)
	if err != nil {
		logs.Errorf("open positions stream for party %s, err: %+v", partyID, err)
		return
	}

	for item := range ch {
		if item.Err != nil {
			logs.Errorf("positions item for party %s, err: %+v", partyID, item.Err)
			metrics.IncStreamError()
			continue
		}
		s.SavePositions(item.Positions)
		metrics.IncStreamApplied()
	}
	logs.Warnf("positions stream for party %s ended", partyID)
}
