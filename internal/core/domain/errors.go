package domain

import "errors"

// ErrMissingFields covers every create/register operation that received an
// empty required field. Handlers surface it as a 400.
var ErrMissingFields = errors.New("missing required fields")
