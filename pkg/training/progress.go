package training

import (
	"github.com/stridelog/stridelog/pkg/activity"
)

// WeeklySummary aggregates one week of matched workouts for an athlete.
type WeeklySummary struct {
	Week     Week
	Workouts []MatchedWorkout
	// PlannedDistance is the summed target distance of the week's planned workouts, in meters.
	PlannedDistance float64
	// ActivityDistance is the summed distance of all in-window activities, in meters.
	ActivityDistance float64
	// CompletionPercent is ActivityDistance relative to PlannedDistance; 0 when nothing was planned.
	CompletionPercent float64
	// Unmatched holds the in-window activities not bound to any planned workout.
	Unmatched         []activity.Activity
	UnmatchedDistance float64
}

// CompletionPercent returns the weekly completion percentage. The result is always
// finite: a non-positive planned total yields 0.
func CompletionPercent(plannedTotal float64, activityTotal float64) float64 {
	if plannedTotal <= 0 {
		return 0
	}
	return activityTotal / plannedTotal * 100
}

// UnmatchedActivities returns the pool's activities not bound to any workout in
// results, with their summed distance. Pool order is preserved.
func UnmatchedActivities(pool []activity.Activity, results []MatchedWorkout) ([]activity.Activity, float64) {
	matchedIds := make(map[int64]struct{}, len(results))
	for _, r := range results {
		if r.Matched != nil {
			matchedIds[r.Matched.Id] = struct{}{}
		}
	}

	unmatched := make([]activity.Activity, 0, len(pool))
	total := 0.0
	for _, a := range pool {
		if _, matched := matchedIds[a.Id]; matched {
			continue
		}
		unmatched = append(unmatched, a)
		total += a.Distance
	}
	return unmatched, total
}

// Summarize folds a week's match results and candidate pool into a WeeklySummary.
func Summarize(week Week, results []MatchedWorkout, pool []activity.Activity) WeeklySummary {
	plannedTotal := 0.0
	for _, r := range results {
		plannedTotal += r.Distance
	}
	activityTotal := 0.0
	for _, a := range pool {
		activityTotal += a.Distance
	}
	unmatched, unmatchedDistance := UnmatchedActivities(pool, results)

	return WeeklySummary{
		Week:              week,
		Workouts:          results,
		PlannedDistance:   plannedTotal,
		ActivityDistance:  activityTotal,
		CompletionPercent: CompletionPercent(plannedTotal, activityTotal),
		Unmatched:         unmatched,
		UnmatchedDistance: unmatchedDistance,
	}
}
