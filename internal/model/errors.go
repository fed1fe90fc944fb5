package model

import "errors"

var (
	// ErrInvalidInput marks non-positive or out-of-range numeric input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoCandidates marks an empty (filtered) catalog subset.
	ErrNoCandidates = errors.New("no compatible candidates")
)
