package cliqueindex

import "errors"

// ErrDuplicateID indicates Insert or FromObservations was given an
// observation id that is already present in the index.
var ErrDuplicateID = errors.New("cliqueindex: duplicate observation id")

// ErrInvalidThreshold indicates New or FromObservations was given a
// chi-squared threshold that is not strictly positive and finite.
var ErrInvalidThreshold = errors.New("cliqueindex: threshold must be positive and finite")
