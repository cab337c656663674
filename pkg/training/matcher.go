package training

import (
	"math"

	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/plan"
)

// tolerance is the fraction of the planned metric within which an activity is
// considered a match for a planned workout.
const tolerance = 0.15

// MatchedWorkout is a planned workout annotated with its match outcome for one week.
type MatchedWorkout struct {
	plan.PlannedWorkout
	Completed bool
	// Matched is the activity bound to this workout, or nil. An activity binds to at
	// most one workout per matching run.
	Matched *activity.Activity
}

// CandidatePool returns the activities whose start timestamp falls within the week,
// in their original relative order. The result is a fresh slice.
func CandidatePool(activities []activity.Activity, week Week) []activity.Activity {
	pool := make([]activity.Activity, 0, len(activities))
	for _, a := range activities {
		if week.Contains(a.StartDateLocal) {
			pool = append(pool, a)
		}
	}
	return pool
}

// MatchTrainings pairs each planned workout scheduled in the week with at most one
// in-window activity. Workouts are processed in their original order and each takes
// the first qualifying candidate in pool order; matched activities are consumed and
// unavailable to later workouts. This is a deliberately greedy assignment, not a
// minimum-delta matching: earlier workouts get first claim on ambiguous candidates.
//
// Neither input slice is mutated. A missing or empty plan yields an empty result,
// and an empty candidate pool yields every workout uncompleted.
func MatchTrainings(planned []plan.PlannedWorkout, activities []activity.Activity, week Week) []MatchedWorkout {
	scheduled := make([]plan.PlannedWorkout, 0, len(planned))
	for _, w := range planned {
		if week.ContainsDate(w.Day) {
			scheduled = append(scheduled, w)
		}
	}
	pool := CandidatePool(activities, week)

	results := make([]MatchedWorkout, 0, len(scheduled))
	for _, w := range scheduled {
		result := MatchedWorkout{PlannedWorkout: w}
		for i := range pool {
			if !qualifies(w, pool[i]) {
				continue
			}
			matched := pool[i]
			result.Completed = true
			result.Matched = &matched
			pool = append(pool[:i], pool[i+1:]...)
			break
		}
		results = append(results, result)
	}
	return results
}

// qualifies reports whether the activity falls within the tolerance band of the
// planned workout's distance and, when a duration target is set, of its duration.
// A non-positive planned distance collapses the band, so such workouts never match.
func qualifies(w plan.PlannedWorkout, a activity.Activity) bool {
	if math.Abs(w.Distance-a.Distance) >= w.Distance*tolerance {
		return false
	}
	if w.TargetDuration > 0 {
		delta := math.Abs(w.TargetDuration.Minutes() - a.MovingTime.Minutes())
		if delta >= w.TargetDuration.Minutes()*tolerance {
			return false
		}
	}
	return true
}
