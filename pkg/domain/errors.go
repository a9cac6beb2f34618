package domain

import "errors"

// ErrFunnelNotFound is returned when a funnel ID cannot be found in the repository.
var ErrFunnelNotFound = errors.New("funnel not found")

// ErrStepNotFound is returned when an operation references a step ID that
// does not exist in the funnel.
var ErrStepNotFound = errors.New("step not found")

// ErrSelfConnection is returned when a connection would point a step at itself.
var ErrSelfConnection = errors.New("connection source and target are the same step")

// ErrInvalidIndex is returned when a reorder operation receives an index
// outside the step list.
var ErrInvalidIndex = errors.New("index out of range")
