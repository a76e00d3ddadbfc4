package models

import "time"

// Direction is the traffic label a log row is accumulated under. Uploads (device to network) are
// recorded as "received" from the network's point of view; everything else is "sent".
type Direction string

const (
	DirectionReceived Direction = "received"
	DirectionSent     Direction = "sent"
)

// DirectionFromUpload maps the raw upload flag of a row to its label.
func DirectionFromUpload(upload bool) Direction {
	if upload {
		return DirectionReceived
	}
	return DirectionSent
}

const (
	// DateLayout is the calendar-date key of a ByteCube.
	DateLayout = "2006-01-02"

	secondsPerDay = 24 * 60 * 60
)

// DateCache converts epoch seconds to UTC calendar dates, remembering the last day it formatted.
// Log rows are roughly time ordered, so almost every lookup is a hit. Not safe for concurrent use.
type DateCache struct {
	day  int64
	date string
	ok   bool
}

func (c *DateCache) Date(epochSeconds int64) string {
	day := epochSeconds / secondsPerDay
	if epochSeconds%secondsPerDay < 0 {
		day--
	}
	if c.ok && c.day == day {
		return c.date
	}
	c.day = day
	c.date = time.Unix(epochSeconds, 0).UTC().Format(DateLayout)
	c.ok = true
	return c.date
}
