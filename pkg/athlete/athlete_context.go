package athlete

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const AthleteKey contextKey = "athlete"

var ErrNoAthlete = errors.New("athlete not found")

// CurrentId retrieves the current athlete's ID from the context. Returns ErrNoAthlete if not present.
func CurrentId(ctx context.Context) (int, error) {
	a, ok := ctx.Value(AthleteKey).(Athlete)
	if !ok {
		log.Trace("athlete not found in context")
		return 0, ErrNoAthlete
	}
	return a.Id, nil
}

func CurrentAthlete(ctx context.Context) (Athlete, error) {
	a, ok := ctx.Value(AthleteKey).(Athlete)
	if !ok {
		log.Trace("athlete not found in context")
		return Athlete{}, ErrNoAthlete
	}
	return a, nil
}

func WithAthlete(ctx context.Context, a Athlete) context.Context {
	return context.WithValue(ctx, AthleteKey, a)
}
