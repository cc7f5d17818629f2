package strategy

import (
	"github.com/shopspring/decimal"

	"vegamm/internal/model"
)

// Decimals converts between human-readable values and the venue's integer
// representations. Price and position carry independent scales on the market,
// the settlement asset carries a third. Recomputed from the market and asset
// each decision cycle, never stored.
type Decimals struct {
	priceFactor    decimal.Decimal
	positionFactor decimal.Decimal
	assetFactor    decimal.Decimal
}

func NewDecimals(mkt model.Market, asset model.Asset) Decimals {
	return Decimals{
		priceFactor:    decimal.New(1, int32(mkt.DecimalPlaces)),
		positionFactor: decimal.New(1, int32(mkt.PositionDecimalPlaces)),
		assetFactor:    decimal.New(1, int32(asset.Decimals)),
	}
}

func (d Decimals) FromAssetPrecision(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(d.assetFactor)
}

func (d Decimals) FromMarketPricePrecision(price decimal.Decimal) decimal.Decimal {
	return price.Div(d.priceFactor)
}

func (d Decimals) FromMarketPositionPrecision(position decimal.Decimal) decimal.Decimal {
	return position.Div(d.positionFactor)
}

func (d Decimals) ToMarketPricePrecision(price decimal.Decimal) decimal.Decimal {
	return price.Mul(d.priceFactor)
}

func (d Decimals) ToMarketPositionPrecision(position decimal.Decimal) decimal.Decimal {
	return position.Mul(d.positionFactor)
}
