package activity

import "time"

// Activity is a recorded, completed workout. Synced activities keep the tracking
// source's id in ExternalId; manually recorded ones have ExternalId == 0.
type Activity struct {
	Id         int64
	ExternalId int64
	Name       string
	Sport      string
	// Distance is in meters.
	Distance float64
	// MovingTime is the active duration of the recording.
	MovingTime time.Duration
	// StartDateLocal is the start timestamp in the athlete's local timezone.
	// It is authoritative for week bucketing.
	StartDateLocal time.Time
}
