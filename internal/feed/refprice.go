package feed

import "sync"

// RefPrice holds the latest best bid/ask pair from the reference exchange.
// Both legs stay zero until the first stream update lands; consumers treat a
// zero leg as "feed not warm yet".
type RefPrice struct {
	mu      sync.Mutex
	bestBid float64
	bestAsk float64
}

func NewRefPrice() *RefPrice {
	return &RefPrice{}
}

// Get returns the current (bestBid, bestAsk) pair.
func (r *RefPrice) Get() (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bestBid, r.bestAsk
}

// Set replaces the pair wholesale.
func (r *RefPrice) Set(bestBid, bestAsk float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bestBid = bestBid
	r.bestAsk = bestAsk
}
