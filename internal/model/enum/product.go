package enum

// Product future, perpetual, spot
type Product uint8

const (
	_product_beg Product = iota
	ProductFuture
	ProductPerpetual
	ProductSpot
	_product_end
)

func (p Product) IsAvailable() bool {
	return p > _product_beg && p < _product_end
}

func (p Product) String() string {
	switch p {
	case ProductFuture:
		return "future"
	case ProductPerpetual:
		return "perpetual"
	case ProductSpot:
		return "spot"
	default:
		return "unknown"
	}
}
