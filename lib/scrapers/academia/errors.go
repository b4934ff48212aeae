package academia

import "errors"

// Every failure the pipeline can surface maps onto one of these kinds.
// None of them are recovered internally, a run is all-or-nothing.
var (
	ErrAuthentication    = errors.New("the portal rejected these credentials")
	ErrNavigationTimeout = errors.New("timed out waiting for the portal page to become ready")
	ErrParse             = errors.New("unexpected portal page layout")
	ErrNetwork           = errors.New("could not reach the portal")
)
