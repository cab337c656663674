package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/stridelog/stridelog/internal/utils"
	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/plan"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetWeeklySummary matches the current athlete's plan against their recorded
	// activities for the week weekOffset whole weeks away from the current one.
	GetWeeklySummary(ctx context.Context, weekOffset int) (WeeklySummary, error)
}

type PlanReader interface {
	GetPlan(ctx context.Context) ([]plan.PlannedWorkout, error)
}

type ActivityReader interface {
	ListAll(ctx context.Context) ([]activity.Activity, error)
}

type ServiceImpl struct {
	planService     PlanReader
	activityService ActivityReader
	clock           utils.Clock
}

func NewService(planService PlanReader, activityService ActivityReader, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		planService:     planService,
		activityService: activityService,
		clock:           clock,
	}
}

func (s *ServiceImpl) GetWeeklySummary(ctx context.Context, weekOffset int) (WeeklySummary, error) {
	week := ResolveWeek(s.clock.Now(), weekOffset)

	planned, err := s.planService.GetPlan(ctx)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			// An athlete without a plan sees a neutral empty week.
			log.Debugf("no training plan found, returning empty summary for week %s", week.Start.Format("2006-01-02"))
			planned = nil
		} else {
			return WeeklySummary{}, fmt.Errorf("failed to get training plan: %w", err)
		}
	}

	activities, err := s.activityService.ListAll(ctx)
	if err != nil {
		return WeeklySummary{}, fmt.Errorf("failed to get activities: %w", err)
	}

	results := MatchTrainings(planned, activities, week)
	pool := CandidatePool(activities, week)
	return Summarize(week, results, pool), nil
}
