package catalog

import "errors"

// ErrNonPositive indicates a catalog constant that is zero or negative.
var ErrNonPositive = errors.New("catalog: constant must be positive")
