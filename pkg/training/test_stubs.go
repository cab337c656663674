package training

import (
	"context"

	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/plan"
)

type planReaderStub struct {
	workouts []plan.PlannedWorkout
}

func newPlanReaderStub() *planReaderStub {
	return &planReaderStub{}
}

func (s *planReaderStub) GetPlan(ctx context.Context) ([]plan.PlannedWorkout, error) {
	if len(s.workouts) == 0 {
		return nil, plan.ErrPlanNotFound
	}
	return s.workouts, nil
}

func (s *planReaderStub) setWorkouts(workouts []plan.PlannedWorkout) {
	s.workouts = workouts
}

func (s *planReaderStub) reset() {
	s.workouts = nil
}

type activityReaderStub struct {
	activities []activity.Activity
	err        error
}

func newActivityReaderStub() *activityReaderStub {
	return &activityReaderStub{}
}

func (s *activityReaderStub) ListAll(ctx context.Context) ([]activity.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.activities, nil
}

func (s *activityReaderStub) setActivities(activities []activity.Activity) {
	s.activities = activities
}

func (s *activityReaderStub) reset() {
	s.activities = nil
	s.err = nil
}
