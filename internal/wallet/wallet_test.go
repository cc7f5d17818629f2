package wallet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vegamm/internal/model"
	"vegamm/internal/model/enum"
	"vegamm/pkg/exception"
)

func cancelBatch() model.BatchMarketInstructions {
	return model.BatchMarketInstructions{
		Cancellations: []model.OrderCancellation{{MarketID: "mkt-1"}},
	}
}

func TestSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/command", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Write([]byte(`{"txHash":"abc123","code":0}`))
	}))
	t.Cleanup(srv.Close)

	clt := NewClient(srv.URL, "token-1", "pk-1", srv.Client())
	assert.Equal(t, "pk-1", clt.PubKey())

	batch := cancelBatch()
	batch.Submissions = []model.OrderSubmission{{
		MarketID:    "mkt-1",
		Price:       "150",
		Size:        7,
		Side:        enum.OrderSideSell,
		TimeInForce: enum.OrderTimeInForceGFN,
		Type:        enum.OrderTypeLimit,
	}}

	res, err := clt.Send(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.TxHash)

	assert.Equal(t, "pk-1", got["publicKey"])
	wire := got["batchMarketInstructions"].(map[string]any)
	subs := wire["submissions"].([]any)
	require.Len(t, subs, 1)
	sub := subs[0].(map[string]any)
	assert.Equal(t, "SIDE_SELL", sub["side"])
	assert.Equal(t, "TYPE_LIMIT", sub["type"])
	assert.Equal(t, "TIME_IN_FORCE_GFN", sub["timeInForce"])
	assert.Equal(t, "150", sub["price"])
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"margin check failed"}`))
	}))
	t.Cleanup(srv.Close)

	clt := NewClient(srv.URL, "", "pk-1", srv.Client())
	_, err := clt.Send(context.Background(), cancelBatch())
	assert.ErrorIs(t, err, exception.ErrOrderRejected)
}

func TestSendEmptyBatch(t *testing.T) {
	clt := NewClient("http://127.0.0.1:1", "", "pk-1", nil)
	_, err := clt.Send(context.Background(), model.BatchMarketInstructions{})
	assert.ErrorIs(t, err, exception.ErrOrderEmptyBatch)
}
