package strategy

import (
	"context"
	"math/big"
	"math/rand"
	"time"

	"vegamm/internal/feed"
	"vegamm/internal/model"
	"vegamm/internal/model/enum"
	"vegamm/internal/obs"
	"vegamm/internal/store"
	"vegamm/internal/wallet"
	"vegamm/pkg/exception"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

// Config describes the engine's cadence and sizing bound.
type Config struct {
	MarketID       string
	TradeSize      int64
	SubmissionRate time.Duration
	JitterMax      time.Duration
}

// Engine runs one decision cycle per tick: snapshot the store and the
// reference price, size a balanced order pair for the two accounts and submit
// one batch per account. Cycles never overlap; a slow cycle just delays the
// next tick.
type Engine struct {
	cfg     Config
	store   *store.Store
	ref     *feed.RefPrice
	w1, w2  wallet.Submitter
	rng     *rand.Rand
	metrics *obs.Metrics
}

// New wires an engine. The rng is injected so tests can pin seeds.
func New(cfg Config, s *store.Store, ref *feed.RefPrice, w1, w2 wallet.Submitter, rng *rand.Rand, metrics *obs.Metrics) *Engine {
	return &Engine{
		cfg:     cfg,
		store:   s,
		ref:     ref,
		w1:      w1,
		w2:      w2,
		rng:     rng,
		metrics: metrics,
	}
}

// Run blocks until the context ends. Before the periodic loop it clears any
// resting orders left over from a previous run.
func (e *Engine) Run(ctx context.Context) {
	logs.Infof("starting engine with submission rate of %s", e.cfg.SubmissionRate)

	e.cancelAll(ctx)

	ticker := time.NewTicker(e.cfg.SubmissionRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			extra := e.jitter()
			logs.Infof("adding extra sleep of %s before starting cycle", extra)
			select {
			case <-ctx.Done():
				return
			case <-time.After(extra):
			}

			if err := e.runOnce(ctx); err != nil {
				logs.Errorf("strategy cycle, err: %+v", err)
			}
		}
	}
}

// jitter draws this cycle's random extra delay, full seconds below the bound.
func (e *Engine) jitter() time.Duration {
	bound := int64(e.cfg.JitterMax / time.Second)
	if bound <= 0 {
		return 0
	}
	return time.Duration(e.rng.Int63n(bound)) * time.Second
}

func (e *Engine) cancelAll(ctx context.Context) {
	logs.Info("cancelling any resting orders from a previous run")
	for _, w := range []wallet.Submitter{e.w1, e.w2} {
		res, err := w.Send(ctx, cancelAllBatch(e.cfg.MarketID))
		if err != nil {
			logs.Errorf("cancel batch for %s, err: %+v", w.PubKey(), err)
			continue
		}
		logs.Infof("cancel batch for %s: tx %s", w.PubKey(), res.TxHash)
	}
}

func (e *Engine) runOnce(ctx context.Context) error {
	mkt := e.store.Market()
	assetID, err := mkt.SettlementAsset()
	if err != nil {
		return err
	}
	asset, err := e.store.Asset(assetID)
	if err != nil {
		return err
	}

	logs.Infof("updating quotes for %s", mkt.Name)

	bestBid, bestAsk := e.ref.Get()
	if bestBid == 0 || bestAsk == 0 {
		logs.Info("reference prices are not up to date yet")
		e.metrics.IncCycleSkipped()
		return nil
	}

	md := e.store.MarketData()
	midPrice, err := venueMidPrice(md.BestBidPrice, md.BestOfferPrice)
	if err != nil {
		return err
	}

	d := NewDecimals(mkt, asset)
	logs.Infof("reference prices: bestBid(%v) bestAsk(%v), venue mid %s (%s human)",
		bestBid, bestAsk, midPrice,
		d.FromMarketPricePrecision(decimal.RequireFromString(midPrice)))

	tradeSize := e.rng.Int63n(e.cfg.TradeSize) + 1
	logs.Infof("selected trade size: %d", tradeSize)

	posA := e.openVolume(e.w1.PubKey())
	posB := e.openVolume(e.w2.PubKey())
	logs.Infof("account %s open volume: %d", e.w1.PubKey(), posA)
	logs.Infof("account %s open volume: %d", e.w2.PubKey(), posB)

	sizeA, sizeB, marketOrder := orderSizes(posA, posB, tradeSize)
	logs.Infof("order sizes: %d / %d, market orders: %t", sizeA, sizeB, marketOrder)

	batchA := buildBatch(e.cfg.MarketID, midPrice, sizeA, marketOrder)
	batchB := buildBatch(e.cfg.MarketID, midPrice, sizeB, marketOrder)

	// whichever account buys goes first, so its order is on the book when the
	// counter-order lands
	if sizeA > 0 {
		e.submit(ctx, e.w1, batchA)
		e.submit(ctx, e.w2, batchB)
	} else {
		e.submit(ctx, e.w2, batchB)
		e.submit(ctx, e.w1, batchA)
	}

	e.metrics.IncCycleRun()
	return nil
}

func (e *Engine) submit(ctx context.Context, w wallet.Submitter, batch model.BatchMarketInstructions) {
	res, err := w.Send(ctx, batch)
	if err != nil {
		logs.Errorf("submission for %s, err: %+v", w.PubKey(), err)
		e.metrics.IncSubmissionFailed()
		return
	}
	logs.Infof("submission for %s: tx %s", w.PubKey(), res.TxHash)
	e.metrics.IncSubmissionOK()
}

func (e *Engine) openVolume(pubKey string) int64 {
	if p, ok := e.store.Position(pubKey); ok {
		return p.OpenVolume
	}
	return 0
}

// venueMidPrice computes floor((bestBid+bestOffer)/2) on the venue's integer
// price strings. The strings may exceed 64-bit range, hence big.Int.
func venueMidPrice(bestBid, bestOffer string) (string, error) {
	bid, ok := new(big.Int).SetString(bestBid, 10)
	if !ok {
		return "", errors.Wrap(exception.ErrOrderInvalidMarketData, bestBid)
	}
	offer, ok := new(big.Int).SetString(bestOffer, 10)
	if !ok {
		return "", errors.Wrap(exception.ErrOrderInvalidMarketData, bestOffer)
	}

	mid := new(big.Int).Add(bid, offer)
	return mid.Quo(mid, big.NewInt(2)).String(), nil
}

// buildBatch cancels every resting order on the market and, when size is
// nonzero, submits one order. Market orders go out IOC with an empty price,
// limit orders rest GFN at the given venue-integer price.
func buildBatch(marketID, price string, size int64, isMarket bool) model.BatchMarketInstructions {
	batch := cancelAllBatch(marketID)
	if size == 0 {
		return batch
	}

	side := enum.OrderSideBuy
	if size < 0 {
		side = enum.OrderSideSell
		size = -size
	}

	tif, typ := enum.OrderTimeInForceGFN, enum.OrderTypeLimit
	if isMarket {
		tif, typ, price = enum.OrderTimeInForceIOC, enum.OrderTypeMarket, ""
	}

	batch.Submissions = []model.OrderSubmission{{
		MarketID:    marketID,
		Price:       price,
		Size:        uint64(size),
		Side:        side,
		TimeInForce: tif,
		Type:        typ,
	}}
	return batch
}

func cancelAllBatch(marketID string) model.BatchMarketInstructions {
	return model.BatchMarketInstructions{
		Cancellations: []model.OrderCancellation{{MarketID: marketID}},
	}
}
