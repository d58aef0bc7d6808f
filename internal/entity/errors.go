package entity

import "errors"

// Domain errors for chart computation. None of these conditions is
// transient: the same inputs reproduce the same failure on every call.
var (
	// ErrDateNotFound means the calendar lookup has no row for the
	// requested date; the chart cannot be produced.
	ErrDateNotFound = errors.New("calendar date not found")

	// ErrTermNotFound means the bounded principal-term search exhausted
	// its expansion cap, indicating a gap in the solar-term data.
	ErrTermNotFound = errors.New("principal solar term not found")

	// ErrInvalidSymbol means a stem or branch value outside the fixed
	// 10/12-symbol domain reached a table lookup. This signals a logic
	// defect, not a user-facing condition.
	ErrInvalidSymbol = errors.New("invalid stem or branch symbol")

	// ErrInvalidRequest means the chart request carried an out-of-range
	// field (date, time, sex or calendar kind).
	ErrInvalidRequest = errors.New("invalid chart request")
)
