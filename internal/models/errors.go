package models

import "errors"

var (
	// ErrEmptyDataset is returned when a latest-date lookup has no rows to work from.
	ErrEmptyDataset = errors.New("dataset has no measurements")

	// ErrStorageUnavailable marks failures to reach or read the underlying dataset.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
