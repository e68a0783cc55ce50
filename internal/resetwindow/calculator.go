package resetwindow

import (
	"fmt"
	"time"

	"github.com/journey-app/journey/internal/domain"
)

// Calculator binds the pure window functions to a clock and a location
type Calculator struct {
	loc *time.Location
	now func() time.Time
}

// NewCalculator creates a Calculator for loc using the wall clock
func NewCalculator(loc *time.Location) *Calculator {
	return NewCalculatorWithClock(loc, time.Now)
}

// NewCalculatorWithClock creates a Calculator with an injected clock (used by tests)
func NewCalculatorWithClock(loc *time.Location, now func() time.Time) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc, now: now}
}

// LoadLocation resolves a MISSION_TIMEZONE value. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid mission timezone %q: %w", name, err)
	}
	return loc, nil
}

// Location returns the configured mission timezone
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Now returns the current time in the mission timezone
func (c *Calculator) Now() time.Time {
	return c.now().In(c.loc)
}

// Key returns the current reset key for missionType
func (c *Calculator) Key(missionType domain.MissionType) string {
	return Key(missionType, c.Now())
}

// WindowStart returns the start of the current window for missionType
func (c *Calculator) WindowStart(missionType domain.MissionType) (time.Time, bool) {
	return WindowStart(missionType, c.Now())
}

// NextReset returns when the current window for missionType rolls over
func (c *Calculator) NextReset(missionType domain.MissionType) (time.Time, bool) {
	return NextReset(missionType, c.Now())
}
