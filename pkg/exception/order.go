package exception

import "errors"

var (
	ErrOrderEmptyBatch        = errors.New("order: empty batch")
	ErrOrderRejected          = errors.New("order: rejected by venue")
	ErrOrderDecodeResponse    = errors.New("order: decode response body")
	ErrOrderInvalidMarketData = errors.New("order: invalid market data price")
)
