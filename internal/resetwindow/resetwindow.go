// Package resetwindow computes the bucket keys that gate mission claims.
//
// Every function here is pure: callers pass the current time already
// converted into the mission timezone, or go through a Calculator which
// does the conversion with one configured location for both progress
// reads and claim stamping.
package resetwindow

import (
	"fmt"
	"time"

	"github.com/journey-app/journey/internal/domain"
)

// CareerKey is shared by every career claim. Once claimed, a career mission stays claimed.
const CareerKey = "career"

const (
	dailyKeyLayout = "2006-01-02"
	daysPerWeek    = 7
)

// Key returns the reset key of the window containing now.
// Unknown mission types are bucketed daily.
func Key(missionType domain.MissionType, now time.Time) string {
	switch missionType {
	case domain.MissionTypeCareer:
		return CareerKey
	case domain.MissionTypeWeekly:
		monday := weekStart(now)
		week := (monday.Day() + daysPerWeek - 1) / daysPerWeek
		return fmt.Sprintf("%04d-%02d-W%d", monday.Year(), int(monday.Month()), week)
	default:
		return now.Format(dailyKeyLayout)
	}
}

// WindowStart returns the first instant of the window containing now.
// The boolean is false for career missions, whose window is unbounded.
func WindowStart(missionType domain.MissionType, now time.Time) (time.Time, bool) {
	switch missionType {
	case domain.MissionTypeCareer:
		return time.Time{}, false
	case domain.MissionTypeWeekly:
		return weekStart(now), true
	default:
		return dayStart(now), true
	}
}

// NextReset returns the instant the window containing now rolls over.
// The boolean is false for career missions, which never reset.
func NextReset(missionType domain.MissionType, now time.Time) (time.Time, bool) {
	switch missionType {
	case domain.MissionTypeCareer:
		return time.Time{}, false
	case domain.MissionTypeWeekly:
		m := weekStart(now)
		return time.Date(m.Year(), m.Month(), m.Day()+daysPerWeek, 0, 0, 0, 0, m.Location()), true
	default:
		d := dayStart(now)
		return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, d.Location()), true
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart rolls back to Monday 00:00. Sunday belongs to the week that began six days earlier.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + daysPerWeek - 1) % daysPerWeek
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}
