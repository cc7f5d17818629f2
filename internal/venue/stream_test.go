package venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamServer(t *testing.T, messages []string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for _, msg := range messages {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
		}
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func collect[T any](t *testing.T, ch <-chan T, n int) []T {
	t.Helper()
	items := make([]T, 0, n)
	timeout := time.After(2 * time.Second)
	for len(items) < n {
		select {
		case item, ok := <-ch:
			if !ok {
				return items
			}
			items = append(items, item)
		case <-timeout:
			t.Fatalf("timed out after %d items", len(items))
		}
	}
	return items
}

func TestObserveMarketData(t *testing.T) {
	srv := newStreamServer(t, []string{
		`{"marketData":{"marketId":"mkt-1","bestBidPrice":"100","bestOfferPrice":"200"}}`,
		`{"error":"internal"}`,
		`{"marketData":{"marketId":"mkt-1","bestBidPrice":"101","bestOfferPrice":"201"}}`,
	})

	s := NewStream(wsURL(srv))
	ch, err := s.ObserveMarketData(context.Background(), "mkt-1")
	require.NoError(t, err)

	items := collect(t, ch, 3)
	require.Len(t, items, 3)
	assert.Equal(t, "100", items[0].Data.BestBidPrice)
	assert.Error(t, items[1].Err)
	assert.Equal(t, "101", items[2].Data.BestBidPrice)

	// server closed the stream; the channel closes, no reconnect
	_, open := <-ch
	assert.False(t, open)
}

func TestObservePositions(t *testing.T) {
	srv := newStreamServer(t, []string{
		`{"snapshot":{"positions":[
			{"partyId":"pk-1","marketId":"mkt-1","openVolume":"5","averageEntryPrice":"150"},
			{"partyId":"pk-2","marketId":"mkt-1","openVolume":"-5","averageEntryPrice":"150"}]}}`,
		`{"updates":{"positions":[
			{"partyId":"pk-1","marketId":"mkt-1","openVolume":"2","averageEntryPrice":"151"}]}}`,
	})

	s := NewStream(wsURL(srv))
	ch, err := s.ObservePositions(context.Background(), "pk-1", "mkt-1")
	require.NoError(t, err)

	items := collect(t, ch, 2)
	require.Len(t, items, 2)
	require.NoError(t, items[0].Err)
	require.Len(t, items[0].Positions, 2)
	assert.Equal(t, int64(5), items[0].Positions[0].OpenVolume)
	assert.Equal(t, int64(-5), items[0].Positions[1].OpenVolume)

	require.Len(t, items[1].Positions, 1)
	assert.Equal(t, int64(2), items[1].Positions[0].OpenVolume)
}

func TestObserveMarketDataDialFailure(t *testing.T) {
	s := NewStream("ws://127.0.0.1:1")
	_, err := s.ObserveMarketData(context.Background(), "mkt-1")
	assert.Error(t, err)
}

func TestToPositions(t *testing.T) {
	positions, err := toPositions([]positionRecord{
		{PartyID: "pk-1", MarketID: "mkt-1", OpenVolume: "-12", AverageEntryPrice: "99"},
		{PartyID: "pk-2", MarketID: "mkt-1"},
	})
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, int64(-12), positions[0].OpenVolume)
	assert.Equal(t, int64(0), positions[1].OpenVolume)

	_, err = toPositions([]positionRecord{{PartyID: "pk-1", OpenVolume: "abc"}})
	assert.Error(t, err)
}
