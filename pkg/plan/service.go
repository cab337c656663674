package plan

import (
	"context"
	"fmt"

	"github.com/stridelog/stridelog/pkg/athlete"
)

type Service interface {
	// GetPlan returns the current athlete's full plan in authoring order.
	// Returns ErrPlanNotFound when the athlete has no plan.
	GetPlan(ctx context.Context) ([]PlannedWorkout, error)
	AddWorkout(ctx context.Context, w PlannedWorkout) (PlannedWorkout, error)
	UpdateWorkout(ctx context.Context, w PlannedWorkout) (PlannedWorkout, error)
	DeleteWorkout(ctx context.Context, workoutId int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetPlan(ctx context.Context) ([]PlannedWorkout, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.GetPlan(ctx, athleteId)
}

func (s *ServiceImpl) AddWorkout(ctx context.Context, w PlannedWorkout) (PlannedWorkout, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return PlannedWorkout{}, fmt.Errorf("failed to get current athlete: %w", err)
	}
	maxPosition, err := s.repo.FindMaxPosition(ctx, athleteId)
	if err != nil {
		return PlannedWorkout{}, err
	}
	w.Position = maxPosition + 1
	return s.repo.StoreWorkout(ctx, athleteId, w)
}

func (s *ServiceImpl) UpdateWorkout(ctx context.Context, w PlannedWorkout) (PlannedWorkout, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return PlannedWorkout{}, fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.UpdateWorkout(ctx, athleteId, w)
}

func (s *ServiceImpl) DeleteWorkout(ctx context.Context, workoutId int) (bool, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.DeleteWorkout(ctx, athleteId, workoutId)
}
