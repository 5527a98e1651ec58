package edx

import (
	"errors"
	"fmt"
)

// ErrUpstream is the single error kind surfaced for any failure talking to
// either upstream API: network, non-2xx status, or malformed payload.
// Callers match with errors.Is and must not distinguish sub-causes.
var ErrUpstream = errors.New("upstream service error")

// wrapUpstream annotates err with the failing operation while keeping
// ErrUpstream matchable through the chain.
func wrapUpstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}
