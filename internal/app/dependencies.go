package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stridelog/stridelog/internal/config"
	"github.com/stridelog/stridelog/internal/utils"
	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/athlete"
	"github.com/stridelog/stridelog/pkg/plan"
	"github.com/stridelog/stridelog/pkg/strava"
	"github.com/stridelog/stridelog/pkg/training"
)

// Dependencies holds all shared services and handlers of the application.
type Dependencies struct {
	Clock utils.Clock

	AthleteService athlete.Service
	AthleteHandler *athlete.Handler

	StravaAuth   *strava.StravaAuth
	StravaClient strava.Client

	ActivityService activity.Service
	ActivityHandler *activity.Handler

	PlanService plan.Service
	PlanHandler *plan.Handler

	TrainingService training.Service
	TrainingHandler *training.Handler
}

func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	clock := utils.SystemClock{}

	athleteRepo := athlete.NewRepo(db)
	athleteService := athlete.NewService(athleteRepo)
	athleteHandler := athlete.NewHandler(athleteService)

	stravaRepo := strava.NewRepository(db)
	stravaAuth := strava.NewStravaAuth(stravaRepo, athleteService, cfg)
	stravaClient := strava.NewClient(stravaAuth)

	activityRepo := activity.NewRepository(db)
	activityService := activity.NewService(activityRepo, stravaClient)
	activityHandler := activity.NewHandler(activityService)

	planRepo := plan.NewRepository(db)
	planService := plan.NewService(planRepo)
	planHandler := plan.NewHandler(planService)

	trainingService := training.NewService(planService, activityService, clock)
	trainingHandler := training.NewHandler(trainingService)

	return &Dependencies{
		Clock:           clock,
		AthleteService:  athleteService,
		AthleteHandler:  athleteHandler,
		StravaAuth:      stravaAuth,
		StravaClient:    stravaClient,
		ActivityService: activityService,
		ActivityHandler: activityHandler,
		PlanService:     planService,
		PlanHandler:     planHandler,
		TrainingService: trainingService,
		TrainingHandler: trainingHandler,
	}
}
