package constant

import (
	"time"
)

const (
	// DateFormat is the calendar-date layout used by booking and customer
	// input (check-in/check-out dates, dates of birth).
	DateFormat = "2006-01-02"

	// TimestampFormat is the layout of persisted timestamps.
	TimestampFormat = time.RFC3339
)

const (
	Empty = ""
)
