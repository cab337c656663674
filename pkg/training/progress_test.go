package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/plan"
)

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name          string
		plannedTotal  float64
		activityTotal float64
		want          float64
	}{
		{"full completion", 20000, 20000, 100},
		{"half completion", 20000, 10000, 50},
		{"overachievement is shown raw", 10000, 15000, 150},
		{"zero planned total yields zero", 0, 12000, 0},
		{"negative planned total yields zero", -1, 12000, 0},
		{"nothing recorded", 20000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionPercent(tt.plannedTotal, tt.activityTotal)
			if got != tt.want {
				t.Errorf("CompletionPercent(%v, %v) = %v, want %v", tt.plannedTotal, tt.activityTotal, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("CompletionPercent(%v, %v) is not finite", tt.plannedTotal, tt.activityTotal)
			}
		})
	}
}

func TestUnmatchedActivities(t *testing.T) {
	// plan = one 5k; activities = a matching 5k and an unrelated 20k
	planned := []plan.PlannedWorkout{{Id: 1, Day: inWeek(0, 0), Distance: 5000}}
	activities := []activity.Activity{
		{Id: 1, Distance: 5000, StartDateLocal: inWeek(0, 8)},
		{Id: 2, Distance: 20000, StartDateLocal: inWeek(3, 8)},
	}

	results := MatchTrainings(planned, activities, testWeek)
	pool := CandidatePool(activities, testWeek)
	unmatched, total := UnmatchedActivities(pool, results)

	assert.True(t, results[0].Completed)
	assert.Equal(t, int64(1), results[0].Matched.Id)
	assert.Len(t, unmatched, 1)
	assert.Equal(t, int64(2), unmatched[0].Id)
	assert.Equal(t, float64(20000), total)
}

func TestUnmatchedActivities_AllMatched(t *testing.T) {
	planned := []plan.PlannedWorkout{{Id: 1, Day: inWeek(0, 0), Distance: 5000}}
	activities := []activity.Activity{{Id: 1, Distance: 5000, StartDateLocal: inWeek(0, 8)}}

	results := MatchTrainings(planned, activities, testWeek)
	pool := CandidatePool(activities, testWeek)
	unmatched, total := UnmatchedActivities(pool, results)

	assert.Empty(t, unmatched)
	assert.Zero(t, total)
}

func TestSummarize(t *testing.T) {
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		{Id: 2, Day: inWeek(2, 0), Distance: 10000},
	}
	activities := []activity.Activity{
		{Id: 1, Distance: 5000, StartDateLocal: inWeek(0, 8)},
		{Id: 2, Distance: 7000, StartDateLocal: inWeek(4, 8)},
	}

	results := MatchTrainings(planned, activities, testWeek)
	pool := CandidatePool(activities, testWeek)
	summary := Summarize(testWeek, results, pool)

	assert.Equal(t, float64(15000), summary.PlannedDistance)
	assert.Equal(t, float64(12000), summary.ActivityDistance)
	assert.Equal(t, float64(80), summary.CompletionPercent)
	assert.Len(t, summary.Unmatched, 1)
	assert.Equal(t, int64(2), summary.Unmatched[0].Id)
	assert.Equal(t, float64(7000), summary.UnmatchedDistance)
}

func TestSummarize_EmptyWeek(t *testing.T) {
	summary := Summarize(testWeek, nil, nil)

	assert.Zero(t, summary.PlannedDistance)
	assert.Zero(t, summary.CompletionPercent)
	assert.Empty(t, summary.Workouts)
	assert.Empty(t, summary.Unmatched)
}
