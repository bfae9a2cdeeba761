package dashboard

import "errors"

var (
	// ErrMalformedInput marks user supplied data that could not be used.
	ErrMalformedInput = errors.New("malformed input")
	// ErrMissingTarget marks a slot without a render target.
	ErrMissingTarget = errors.New("missing render target")
	// ErrUnknownFilter is returned for filters that name no chart kind.
	ErrUnknownFilter = errors.New("unknown filter")
)
