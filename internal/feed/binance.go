package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"
	"github.com/yanun0323/pkg/ws"
)

type BinanceFeed struct {
	wss *ws.WebSocket
	ref *RefPrice
}

func NewBinanceFeed(ctx context.Context, wsURL string, ref *RefPrice) *BinanceFeed {
	return &BinanceFeed{
		wss: ws.New(ctx, wsURL),
		ref: ref,
	}
}

func (repo *BinanceFeed) Close() {
	repo.wss.Close()
}

func (repo *BinanceFeed) StartWebsocket(ctx context.Context) error {
	if err := repo.wss.Start(ctx); err != nil {
		return errors.Wrap(err, "start wss")
	}

	return nil
}

type binanceSubscribeRequest struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
	ID     int64    `json:"id"`
}

type binanceSubscribeResponse struct {
	ID     int64 `json:"id"`
	Result any   `json:"result"`
}

// SubscribeBookTicker subscribes 'Individual Symbol Book Ticker Stream'
func (repo *BinanceFeed) SubscribeBookTicker(ctx context.Context, symbol string) error {
	if err := repo.wss.SendAndWait(ctx, ws.Sidecar{
		Sender: func(ctx context.Context, client *ws.WebSocket) error {
			payload := binanceSubscribeRequest{
				Method: "SUBSCRIBE",
				Params: []string{
					fmt.Sprintf("%s@bookTicker", strings.ToLower(symbol)),
				},
				ID: 1,
			}

			if err := client.WriteJSON(payload); err != nil {
				return errors.Wrap(err, "write subscribe payload").With("payload", payload)
			}

			return nil
		},
		Waiter: func(ctx context.Context, m ws.Message) (bool, error) {
			var resp binanceSubscribeResponse
			if err := m.Unmarshal(&resp); err != nil || resp.ID != 1 {
				return false, nil
			}

			if resp.Result != nil {
				return false, errors.Errorf("subscribe and wait, err: %+v", resp.Result)
			}
			return true, nil
		},
	}); err != nil {
		return errors.Wrap(err, "send and wait")
	}

	return nil
}

type binanceBookTicker struct {
	UpdateID   int64  `json:"u"`
	Symbol     string `json:"s"`
	BestBid    string `json:"b"`
	BestBidQty string `json:"B"`
	BestAsk    string `json:"a"`
	BestAskQty string `json:"A"`
}

// ObserveBookTicker keeps the RefPrice current until the context ends.
func (repo *BinanceFeed) ObserveBookTicker(ctx context.Context) (unsubscribe func()) {
	ch, cancel := repo.wss.Subscribe()

	go func() {
		defer cancel()
		for {
			select {
			case <-sys.Shutdown():
				return
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}

				resp, ok := ws.ReadMessage[binanceBookTicker](m)
				if !ok || resp.Symbol == "" {
					continue
				}

				bid, ask, err := parseBookTicker(resp)
				if err != nil {
					logs.Errorf("parse book ticker, err: %+v", err)
					continue
				}

				repo.ref.Set(bid, ask)
			}
		}
	}()

	return cancel
}

func parseBookTicker(t binanceBookTicker) (bid float64, ask float64, err error) {
	bid, err = strconv.ParseFloat(t.BestBid, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse best bid")
	}
	ask, err = strconv.ParseFloat(t.BestAsk, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse best ask")
	}
	return bid, ask, nil
}
