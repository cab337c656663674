package plan

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	nextId   int
	workouts map[int][]PlannedWorkout // athleteId -> workouts
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{workouts: map[int][]PlannedWorkout{}}
}

func (s *RepositoryStub) GetPlan(ctx context.Context, athleteId int) ([]PlannedWorkout, error) {
	stored := s.workouts[athleteId]
	if len(stored) == 0 {
		return nil, ErrPlanNotFound
	}
	workouts := make([]PlannedWorkout, len(stored))
	copy(workouts, stored)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Position < workouts[j].Position
	})
	return workouts, nil
}

func (s *RepositoryStub) StoreWorkout(ctx context.Context, athleteId int, w PlannedWorkout) (PlannedWorkout, error) {
	s.nextId++
	w.Id = s.nextId
	s.workouts[athleteId] = append(s.workouts[athleteId], w)
	return w, nil
}

func (s *RepositoryStub) UpdateWorkout(ctx context.Context, athleteId int, w PlannedWorkout) (PlannedWorkout, error) {
	for i, existing := range s.workouts[athleteId] {
		if existing.Id == w.Id {
			w.Position = existing.Position
			s.workouts[athleteId][i] = w
			return w, nil
		}
	}
	return PlannedWorkout{}, ErrWorkoutNotFound
}

func (s *RepositoryStub) DeleteWorkout(ctx context.Context, athleteId int, workoutId int) (bool, error) {
	for i, existing := range s.workouts[athleteId] {
		if existing.Id == workoutId {
			s.workouts[athleteId] = append(s.workouts[athleteId][:i], s.workouts[athleteId][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *RepositoryStub) FindMaxPosition(ctx context.Context, athleteId int) (int, error) {
	maxPosition := 0
	for _, w := range s.workouts[athleteId] {
		if w.Position > maxPosition {
			maxPosition = w.Position
		}
	}
	return maxPosition, nil
}

func (s *RepositoryStub) Reset() {
	s.workouts = map[int][]PlannedWorkout{}
	s.nextId = 0
}
