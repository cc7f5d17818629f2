package venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vegamm/internal/model/enum"
	"vegamm/pkg/exception"
)

func newGateway(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/market/mkt-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"market":{
			"id":"mkt-1","name":"BTC/USD monthly future",
			"decimalPlaces":5,"positionDecimalPlaces":3,
			"product":{"type":"future","settlementAsset":"asset-1"}}}`))
	})
	mux.HandleFunc("/api/v2/market/mkt-1/data/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"marketData":{
			"marketId":"mkt-1",
			"bestBidPrice":"123456789012345678901234567890",
			"bestOfferPrice":"123456789012345678901234567892",
			"markPrice":"123456789012345678901234567891"}}`))
	})
	mux.HandleFunc("/api/v2/assets", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"assets":[
			{"id":"asset-1","symbol":"USDT","decimals":6},
			{"id":"asset-2","symbol":"ETH","decimals":18}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetMarket(t *testing.T) {
	srv := newGateway(t)
	clt := NewClient(srv.URL, srv.Client())

	mkt, err := clt.GetMarket(context.Background(), "mkt-1")
	require.NoError(t, err)
	assert.Equal(t, "mkt-1", mkt.ID)
	assert.Equal(t, uint32(5), mkt.DecimalPlaces)
	assert.Equal(t, uint32(3), mkt.PositionDecimalPlaces)
	assert.Equal(t, enum.ProductFuture, mkt.Product)

	assetID, err := mkt.SettlementAsset()
	require.NoError(t, err)
	assert.Equal(t, "asset-1", assetID)
}

func TestGetLatestMarketData(t *testing.T) {
	srv := newGateway(t)
	clt := NewClient(srv.URL, srv.Client())

	md, err := clt.GetLatestMarketData(context.Background(), "mkt-1")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", md.BestBidPrice)
	assert.Equal(t, "123456789012345678901234567892", md.BestOfferPrice)
}

func TestListAssets(t *testing.T) {
	srv := newGateway(t)
	clt := NewClient(srv.URL, srv.Client())

	assets, err := clt.ListAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "asset-1", assets[0].ID)
	assert.Equal(t, uint32(18), assets[1].Decimals)
}

func TestGetMarketBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	clt := NewClient(srv.URL, srv.Client())

	_, err := clt.GetMarket(context.Background(), "mkt-1")
	assert.ErrorIs(t, err, exception.ErrVenueBadStatus)
}

func TestParseProduct(t *testing.T) {
	p, err := parseProduct("perpetual")
	require.NoError(t, err)
	assert.Equal(t, enum.ProductPerpetual, p)

	p, err = parseProduct("spot")
	require.NoError(t, err)
	assert.Equal(t, enum.ProductSpot, p)

	_, err = parseProduct("cfd")
	assert.ErrorIs(t, err, exception.ErrVenueUnsupportedProduct)
}
