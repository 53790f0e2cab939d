package footprint

import "errors"

// Error kinds returned by the package. Callers test them with errors.Is; the
// wrapped message carries the details.
var (
	// ErrInvalidInput reports an out-of-range or malformed value (negative
	// distance, negative amount, unsupported unit, empty food item).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCategory reports a factor-table miss (unknown transport mode,
	// energy type, food type or product category).
	ErrUnknownCategory = errors.New("unknown category")

	// ErrStorage reports an unreadable or corrupt store file.
	ErrStorage = errors.New("storage error")

	// ErrPeriod reports an unrecognized period name.
	ErrPeriod = errors.New("unknown period")
)
