package venue

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"vegamm/internal/model"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/yanun0323/errors"
)

// Stream opens long-lived websocket streams against the venue data gateway.
// A stream that the server closes is over for good; resubscription policy
// belongs to the caller, not here.
type Stream struct {
	base   string
	dialer *websocket.Dialer
}

func NewStream(streamURL string) *Stream {
	return &Stream{
		base:   strings.TrimRight(streamURL, "/"),
		dialer: websocket.DefaultDialer,
	}
}

type marketDataMessage struct {
	MarketData *marketDataRecord `json:"marketData"`
	Error      string            `json:"error"`
}

type positionRecord struct {
	PartyID           string `json:"partyId"`
	MarketID          string `json:"marketId"`
	OpenVolume        string `json:"openVolume"`
	AverageEntryPrice string `json:"averageEntryPrice"`
}

type positionsMessage struct {
	Snapshot *positionList `json:"snapshot"`
	Updates  *positionList `json:"updates"`
	Error    string        `json:"error"`
}

type positionList struct {
	Positions []positionRecord `json:"positions"`
}

func (s *Stream) ObserveMarketData(ctx context.Context, marketID string) (<-chan MarketDataItem, error) {
	endpoint := s.base + "/api/v2/stream/markets/data?marketIds=" + url.QueryEscape(marketID)
	conn, _, err := s.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial market data stream")
	}

	out := make(chan MarketDataItem)
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg marketDataMessage
			if err := sonic.Unmarshal(raw, &msg); err != nil {
				out <- MarketDataItem{Err: errors.Wrap(err, "unmarshal market data item")}
				continue
			}
			if msg.Error != "" {
				out <- MarketDataItem{Err: errors.New(msg.Error)}
				continue
			}
			if msg.MarketData == nil {
				continue
			}

			out <- MarketDataItem{Data: msg.MarketData.toModel()}
		}
	}()

	return out, nil
}

func (s *Stream) ObservePositions(ctx context.Context, partyID, marketID string) (<-chan PositionsItem, error) {
	endpoint := s.base + "/api/v2/stream/positions?partyId=" + url.QueryEscape(partyID) +
		"&marketId=" + url.QueryEscape(marketID)
	conn, _, err := s.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial positions stream")
	}

	out := make(chan PositionsItem)
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var msg positionsMessage
			if err := sonic.Unmarshal(raw, &msg); err != nil {
				out <- PositionsItem{Err: errors.Wrap(err, "unmarshal positions item")}
				continue
			}
			if msg.Error != "" {
				out <- PositionsItem{Err: errors.New(msg.Error)}
				continue
			}

			var records []positionRecord
			switch {
			case msg.Snapshot != nil:
				records = msg.Snapshot.Positions
			case msg.Updates != nil:
				records = msg.Updates.Positions
			default:
				continue
			}

			positions, err := toPositions(records)
			if err != nil {
				out <- PositionsItem{Err: err}
				continue
			}

			out <- PositionsItem{Positions: positions}
		}
	}()

	return out, nil
}

func toPositions(records []positionRecord) ([]model.Position, error) {
	positions := make([]model.Position, 0, len(records))
	for _, r := range records {
		volume := int64(0)
		if r.OpenVolume != "" {
			parsed, err := strconv.ParseInt(r.OpenVolume, 10, 64)
			if err != nil {
				return nil, errors.Wrap(err, "parse open volume").With("party", r.PartyID)
			}
			volume = parsed
		}
		positions = append(positions, model.Position{
			PartyID:           r.PartyID,
			MarketID:          r.MarketID,
			OpenVolume:        volume,
			AverageEntryPrice: r.AverageEntryPrice,
		})
	}
	return positions, nil
}
