package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/plan"
)

// testWeek is the week of Monday 2025-03-03 to Sunday 2025-03-09.
var testWeek = ResolveWeek(time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC), 0)

func inWeek(dayOffset int, hour int) time.Time {
	return testWeek.Start.AddDate(0, 0, dayOffset).Add(time.Duration(hour) * time.Hour)
}

func TestMatchTrainings_ToleranceBoundary(t *testing.T) {
	planned := []plan.PlannedWorkout{{Id: 1, Day: inWeek(0, 0), Distance: 10000}}

	tests := []struct {
		name      string
		distance  float64
		completed bool
	}{
		{"exact distance matches", 10000, true},
		{"just inside lower band", 8501, true},
		{"just outside lower band", 8499, false},
		{"exactly 15 percent off does not match", 8500, false},
		{"just inside upper band", 11499, true},
		{"just outside upper band", 11501, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := []activity.Activity{{Id: 1, Distance: tt.distance, StartDateLocal: inWeek(0, 8)}}
			results := MatchTrainings(planned, activities, testWeek)
			assert.Len(t, results, 1)
			assert.Equal(t, tt.completed, results[0].Completed)
		})
	}
}

func TestMatchTrainings_DurationTarget(t *testing.T) {
	planned := []plan.PlannedWorkout{{
		Id:             1,
		Day:            inWeek(0, 0),
		Distance:       10000,
		TargetDuration: 60 * time.Minute,
	}}

	tests := []struct {
		name       string
		movingTime time.Duration
		completed  bool
	}{
		{"duration within band", 55 * time.Minute, true},
		{"duration too short", 51 * time.Minute, false},
		{"duration too long", 69 * time.Minute, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := []activity.Activity{{Id: 1, Distance: 10000, MovingTime: tt.movingTime, StartDateLocal: inWeek(0, 8)}}
			results := MatchTrainings(planned, activities, testWeek)
			assert.Equal(t, tt.completed, results[0].Completed)
		})
	}
}

func TestMatchTrainings_PoolOrderWins(t *testing.T) {
	// Two near-identical plans and two qualifying activities: the first plan takes
	// the first candidate in pool order, not the best fit.
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		{Id: 2, Day: inWeek(2, 0), Distance: 5000},
	}
	activities := []activity.Activity{
		{Id: 1, Distance: 5000, StartDateLocal: inWeek(0, 8)},
		{Id: 2, Distance: 5100, StartDateLocal: inWeek(2, 8)},
	}

	results := MatchTrainings(planned, activities, testWeek)

	assert.Len(t, results, 2)
	assert.True(t, results[0].Completed)
	assert.Equal(t, int64(1), results[0].Matched.Id)
	assert.True(t, results[1].Completed)
	assert.Equal(t, int64(2), results[1].Matched.Id)
}

func TestMatchTrainings_ActivityConsumedAtMostOnce(t *testing.T) {
	// One long run cannot satisfy two separate prescriptions.
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 10000},
		{Id: 2, Day: inWeek(3, 0), Distance: 10000},
	}
	activities := []activity.Activity{{Id: 1, Distance: 10000, StartDateLocal: inWeek(0, 8)}}

	results := MatchTrainings(planned, activities, testWeek)

	assert.True(t, results[0].Completed)
	assert.False(t, results[1].Completed)
	assert.Nil(t, results[1].Matched)
}

func TestMatchTrainings_ZeroDistancePlanNeverMatches(t *testing.T) {
	planned := []plan.PlannedWorkout{{Id: 1, Day: inWeek(0, 0), Distance: 0}}
	activities := []activity.Activity{{Id: 1, Distance: 0, StartDateLocal: inWeek(0, 8)}}

	results := MatchTrainings(planned, activities, testWeek)

	assert.Len(t, results, 1)
	assert.False(t, results[0].Completed)
}

func TestMatchTrainings_FiltersToWindow(t *testing.T) {
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		// previous Sunday and next Monday stay out of the window
		{Id: 2, Day: inWeek(-1, 0), Distance: 5000},
		{Id: 3, Day: inWeek(7, 0), Distance: 5000},
	}
	activities := []activity.Activity{
		{Id: 1, Distance: 5000, StartDateLocal: inWeek(-1, 8)}, // out of window
		{Id: 2, Distance: 5000, StartDateLocal: inWeek(0, 8)},
	}

	results := MatchTrainings(planned, activities, testWeek)

	assert.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Id)
	assert.True(t, results[0].Completed)
	assert.Equal(t, int64(2), results[0].Matched.Id)
}

func TestMatchTrainings_EmptyInputs(t *testing.T) {
	// No plan for the week.
	results := MatchTrainings(nil, []activity.Activity{{Id: 1, Distance: 5000, StartDateLocal: inWeek(0, 8)}}, testWeek)
	assert.Empty(t, results)

	// No activities: every workout uncompleted.
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		{Id: 2, Day: inWeek(2, 0), Distance: 8000},
	}
	results = MatchTrainings(planned, nil, testWeek)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.Completed)
		assert.Nil(t, r.Matched)
	}
}

func TestMatchTrainings_Idempotent(t *testing.T) {
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		{Id: 2, Day: inWeek(2, 0), Distance: 10000},
	}
	activities := []activity.Activity{
		{Id: 1, Distance: 5100, StartDateLocal: inWeek(0, 8)},
		{Id: 2, Distance: 9800, StartDateLocal: inWeek(2, 8)},
	}

	first := MatchTrainings(planned, activities, testWeek)
	second := MatchTrainings(planned, activities, testWeek)

	assert.Equal(t, first, second)
}

func TestMatchTrainings_DoesNotMutateInputs(t *testing.T) {
	planned := []plan.PlannedWorkout{
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		{Id: 2, Day: inWeek(2, 0), Distance: 5000},
	}
	activities := []activity.Activity{
		{Id: 1, Distance: 5000, StartDateLocal: inWeek(0, 8)},
		{Id: 2, Distance: 5100, StartDateLocal: inWeek(2, 8)},
	}
	plannedBefore := make([]plan.PlannedWorkout, len(planned))
	copy(plannedBefore, planned)
	activitiesBefore := make([]activity.Activity, len(activities))
	copy(activitiesBefore, activities)

	MatchTrainings(planned, activities, testWeek)

	assert.Equal(t, plannedBefore, planned)
	assert.Equal(t, activitiesBefore, activities)
}

func TestMatchTrainings_PreservesPlanOrder(t *testing.T) {
	planned := []plan.PlannedWorkout{
		{Id: 3, Day: inWeek(4, 0), Distance: 12000},
		{Id: 1, Day: inWeek(0, 0), Distance: 5000},
		{Id: 2, Day: inWeek(2, 0), Distance: 8000},
	}

	results := MatchTrainings(planned, nil, testWeek)

	assert.Equal(t, 3, results[0].Id)
	assert.Equal(t, 1, results[1].Id)
	assert.Equal(t, 2, results[2].Id)
}
