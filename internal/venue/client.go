package venue

import (
	"context"
	"io"
	"net/http"
	"strings"

	"vegamm/internal/model"
	"vegamm/internal/model/enum"
	"vegamm/pkg/exception"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"
)

// Client queries the venue data gateway over its JSON API.
type Client struct {
	base   string
	client *http.Client
}

func NewClient(gatewayURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		base:   strings.TrimRight(gatewayURL, "/"),
		client: client,
	}
}

type marketPayload struct {
	Market struct {
		ID                    string `json:"id"`
		Name                  string `json:"name"`
		DecimalPlaces         uint32 `json:"decimalPlaces"`
		PositionDecimalPlaces uint32 `json:"positionDecimalPlaces"`
		Product               struct {
			Type            string `json:"type"`
			SettlementAsset string `json:"settlementAsset"`
		} `json:"product"`
	} `json:"market"`
}

type marketDataPayload struct {
	MarketData marketDataRecord `json:"marketData"`
}

type marketDataRecord struct {
	MarketID       string `json:"marketId"`
	BestBidPrice   string `json:"bestBidPrice"`
	BestOfferPrice string `json:"bestOfferPrice"`
	MarkPrice      string `json:"markPrice"`
}

type assetsPayload struct {
	Assets []struct {
		ID       string `json:"id"`
		Symbol   string `json:"symbol"`
		Decimals uint32 `json:"decimals"`
	} `json:"assets"`
}

func (c *Client) GetMarket(ctx context.Context, marketID string) (model.Market, error) {
	var payload marketPayload
	if err := c.get(ctx, "/api/v2/market/"+marketID, &payload); err != nil {
		return model.Market{}, errors.Wrap(err, "get market")
	}

	product, err := parseProduct(payload.Market.Product.Type)
	if err != nil {
		return model.Market{}, err
	}

	return model.Market{
		ID:                     payload.Market.ID,
		Name:                   payload.Market.Name,
		DecimalPlaces:          payload.Market.DecimalPlaces,
		PositionDecimalPlaces:  payload.Market.PositionDecimalPlaces,
		Product:                product,
		ProductSettlementAsset: payload.Market.Product.SettlementAsset,
	}, nil
}

func (c *Client) GetLatestMarketData(ctx context.Context, marketID string) (model.MarketData, error) {
	var payload marketDataPayload
	if err := c.get(ctx, "/api/v2/market/"+marketID+"/data/latest", &payload); err != nil {
		return model.MarketData{}, errors.Wrap(err, "get latest market data")
	}

	return payload.MarketData.toModel(), nil
}

func (c *Client) ListAssets(ctx context.Context) ([]model.Asset, error) {
	var payload assetsPayload
	if err := c.get(ctx, "/api/v2/assets", &payload); err != nil {
		return nil, errors.Wrap(err, "list assets")
	}

	assets := make([]model.Asset, 0, len(payload.Assets))
	for _, a := range payload.Assets {
		assets = append(assets, model.Asset{
			ID:       a.ID,
			Symbol:   a.Symbol,
			Decimals: a.Decimals,
		})
	}
	return assets, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Wrap(exception.ErrVenueBadStatus, resp.Status).With("body", string(body))
	}
	if len(body) == 0 {
		return exception.ErrVenueEmptyResponse
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return errors.Wrap(err, "unmarshal response body")
	}
	return nil
}

func (r marketDataRecord) toModel() model.MarketData {
	return model.MarketData{
		MarketID:       r.MarketID,
		BestBidPrice:   r.BestBidPrice,
		BestOfferPrice: r.BestOfferPrice,
		MarkPrice:      r.MarkPrice,
	}
}

func parseProduct(value string) (enum.Product, error) {
	switch strings.ToLower(value) {
	case "future":
		return enum.ProductFuture, nil
	case "perpetual":
		return enum.ProductPerpetual, nil
	case "spot":
		return enum.ProductSpot, nil
	default:
		return 0, errors.Wrap(exception.ErrVenueUnsupportedProduct, value)
	}
}
