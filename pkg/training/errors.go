package training

import "errors"

// ErrTrackerNotFound is returned when a sender ID cannot be found in a tracker store.
var ErrTrackerNotFound = errors.New("tracker not found")
