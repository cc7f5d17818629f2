package exception

import "errors"

var (
	ErrStoreUnknownAsset = errors.New("store: unknown asset id")
)
