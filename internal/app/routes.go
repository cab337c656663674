package app

import (
	"github.com/gorilla/mux"
	"github.com/stridelog/stridelog/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Training plan
	r.HandleFunc("/api/plan", deps.PlanHandler.GetPlan).Methods("GET")
	r.HandleFunc("/api/plan/workout", deps.PlanHandler.AddWorkout).Methods("POST")
	r.HandleFunc("/api/plan/workout/{workoutId}", deps.PlanHandler.UpdateWorkout).Methods("PUT")
	r.HandleFunc("/api/plan/workout/{workoutId}", deps.PlanHandler.DeleteWorkout).Methods("DELETE")

	// Activities
	r.HandleFunc("/api/activity", deps.ActivityHandler.GetActivities).Methods("GET")
	r.HandleFunc("/api/activity", deps.ActivityHandler.RecordActivity).Methods("POST")
	r.HandleFunc("/api/activity/sync", deps.ActivityHandler.SyncActivities).Methods("POST")
	r.HandleFunc("/api/activity/{activityId}", deps.ActivityHandler.DeleteActivity).Methods("DELETE")

	// Weekly training summary
	r.HandleFunc("/api/training/week", deps.TrainingHandler.GetWeeklySummary).Methods("GET")

	// Athlete management
	r.HandleFunc("/api/athlete/current", deps.AthleteHandler.CurrentAthlete).Methods("GET")
	r.HandleFunc("/api/athlete", deps.AthleteHandler.CreateAthlete).Methods("POST")
	r.HandleFunc("/api/athlete/name-availability", deps.AthleteHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/athlete", deps.AthleteHandler.GetAvailableAthletes).Methods("GET")
	r.HandleFunc("/api/athlete/{athleteId}", deps.AthleteHandler.DeleteAthlete).Methods("DELETE")

	// Strava integration
	r.HandleFunc("/api/integrations/strava/auth/login", deps.StravaAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/strava/auth/callback", deps.StravaAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/integrations/strava/auth", deps.StravaAuth.IsAuthenticated).Methods("GET")
	r.HandleFunc("/api/integrations/strava/auth", deps.StravaAuth.OAuthLogout).Methods("DELETE")
}
