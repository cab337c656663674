package plan

import "time"

// PlannedWorkout is a coach- or self-authored target session for a specific calendar day.
type PlannedWorkout struct {
	Id int
	// Day is matched by calendar date only; the time-of-day component is ignored.
	Day time.Time
	// Distance is the target distance in meters.
	Distance float64
	// TargetDuration is the optional target duration. Zero means no duration target.
	TargetDuration time.Duration
	Title          string
	Description    string
	// Position preserves the authoring order of the plan. Order is significant:
	// earlier workouts get first claim on ambiguous activity matches.
	Position int
}
