package strategy

// orderSizes decides the signed order size for each account and whether the
// pair goes out as aggressive market orders. Positive is buy, negative is
// sell, magnitude is always tradeSize.
//
// When both accounts hold positions of the same sign they both have to
// reduce; resting limit orders might never fill and leave the positions
// correlated, so that case forces market orders. Every other case rebalances
// with two opposite-side limit orders that largely offset each other.
func orderSizes(posA, posB, tradeSize int64) (sizeA, sizeB int64, marketOrder bool) {
	switch {
	case posA == 0 && posB == 0:
		return -tradeSize, tradeSize, false
	case posA == 0:
		if posB > 0 {
			return tradeSize, -tradeSize, false
		}
		return -tradeSize, tradeSize, false
	case posB == 0:
		if posA > 0 {
			return -tradeSize, tradeSize, false
		}
		return tradeSize, -tradeSize, false
	case posA > 0 && posB > 0:
		return -tradeSize, -tradeSize, true
	case posA < 0 && posB < 0:
		return tradeSize, tradeSize, true
	case posA > 0:
		return -tradeSize, tradeSize, false
	default:
		return tradeSize, -tradeSize, false
	}
}
