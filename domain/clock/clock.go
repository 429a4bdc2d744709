package clock

import (
	"time"
)

// Phase buckets the remaining time of a lot for display purposes.
type Phase string

const (
	PhaseEnded  Phase = "ended"
	PhaseUrgent Phase = "urgent"
	PhaseNormal Phase = "normal"
)

// UrgentThreshold is the remaining time under which a countdown is urgent.
const UrgentThreshold = time.Hour

// Remaining returns how long the auction still runs at now, never negative.
func Remaining(end, now time.Time) time.Duration {
	d := end.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Parts is a countdown split into display units.
type Parts struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Split breaks d into days, hours, minutes and seconds. Negative durations
// split as zero.
func Split(d time.Duration) Parts {
	if d < 0 {
		d = 0
	}

	secs := int(d / time.Second)
	return Parts{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

// Classify maps remaining time to a display phase.
func Classify(remaining time.Duration) Phase {
	switch {
	case remaining <= 0:
		return PhaseEnded
	case remaining < UrgentThreshold:
		return PhaseUrgent
	default:
		return PhaseNormal
	}
}

// ShouldExtend reports whether a bid accepted at bidAt lands inside the
// anti-sniping window before end. A zero window disables extension.
func ShouldExtend(window time.Duration, end, bidAt time.Time) bool {
	if window <= 0 {
		return false
	}
	if !bidAt.Before(end) {
		return false
	}
	return end.Sub(bidAt) <= window
}

// ExtendedEnd is the new end date after an anti-sniping extension. The
// countdown resets to a full window from the accepting bid, so every
// last-second bid buys the same amount of response time.
func ExtendedEnd(bidAt time.Time, window time.Duration) time.Time {
	return bidAt.Add(window)
}
