package app

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stridelog/stridelog/internal/config"
	"github.com/stridelog/stridelog/pkg/athlete"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-Athlete-Id header into context for downstream services
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			athleteIdHeader := req.Header.Get("X-Athlete-Id")
			ctx := req.Context()

			if athleteIdHeader != "" {
				a, err := deps.AthleteService.GetAthleteByUid(ctx, athleteIdHeader)
				if err != nil {
					if errors.Is(err, athlete.ErrAthleteNotFound) {
						log.Debugf("athlete not found: %s", athleteIdHeader)
						http.Error(w, "athlete not found", http.StatusForbidden)
						return
					} else {
						log.Errorf("failed to get athlete: %v", err)
						http.Error(w, err.Error(), http.StatusBadRequest)
						return
					}
				} else {
					log.Debugf("athlete found: %s", a.Uid)
					ctx = athlete.WithAthlete(ctx, a)
				}
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
