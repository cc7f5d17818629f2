package enum

// OrderSide buy, sell
type OrderSide uint8

const (
	_order_side_beg OrderSide = iota
	OrderSideBuy
	OrderSideSell
	_order_side_end
)

func (s OrderSide) IsAvailable() bool {
	return s > _order_side_beg && s < _order_side_end
}

// String returns the venue wire name for the side.
func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "SIDE_BUY"
	case OrderSideSell:
		return "SIDE_SELL"
	default:
		return "SIDE_UNSPECIFIED"
	}
}

func (s OrderSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// OrderType limit, market
type OrderType uint8

const (
	_order_type_beg OrderType = iota
	OrderTypeLimit
	OrderTypeMarket
	_order_type_end
)

func (t OrderType) IsAvailable() bool {
	return t > _order_type_beg && t < _order_type_end
}

func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "TYPE_LIMIT"
	case OrderTypeMarket:
		return "TYPE_MARKET"
	default:
		return "TYPE_UNSPECIFIED"
	}
}

func (t OrderType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// OrderTimeInForce GFN for resting limit orders, IOC for market orders
type OrderTimeInForce uint8

const (
	_order_time_in_force_beg OrderTimeInForce = iota
	OrderTimeInForceGFN
	OrderTimeInForceIOC
	_order_time_in_force_end
)

func (f OrderTimeInForce) IsAvailable() bool {
	return f > _order_time_in_force_beg && f < _order_time_in_force_end
}

func (f OrderTimeInForce) String() string {
	switch f {
	case OrderTimeInForceGFN:
		return "TIME_IN_FORCE_GFN"
	case OrderTimeInForceIOC:
		return "TIME_IN_FORCE_IOC"
	default:
		return "TIME_IN_FORCE_UNSPECIFIED"
	}
}

func (f OrderTimeInForce) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}
