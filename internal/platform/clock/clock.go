// Package clock supplies the current calendar date in the format the content
// backend uses for date fields.
package clock

import (
	"fmt"
	"time"
)

// DateLayout matches CMS date fields (YYYY-MM-DD).
const DateLayout = "2006-01-02"

type Clock interface {
	Today() string
}

type systemClock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a wall-clock Clock evaluated in the named IANA zone ("" means UTC).
func New(zone string) (Clock, error) {
	loc := time.UTC
	if zone != "" {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("load location %q: %w", zone, err)
		}
		loc = l
	}
	return &systemClock{loc: loc, now: time.Now}, nil
}

func (c *systemClock) Today() string {
	return c.now().In(c.loc).Format(DateLayout)
}

// UTC is the wall clock in UTC.
func UTC() Clock {
	return &systemClock{loc: time.UTC, now: time.Now}
}

// Fixed always reports the same date.
type Fixed string

func (f Fixed) Today() string { return string(f) }
