package exception

import "errors"

var (
	ErrVenueUnsupportedProduct = errors.New("venue: unsupported product")
	ErrVenueEmptyResponse      = errors.New("venue: empty response body")
	ErrVenueBadStatus          = errors.New("venue: unexpected http status")
	ErrVenueStreamClosed       = errors.New("venue: stream closed by server")
)
