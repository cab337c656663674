package strava

import (
	"time"

	"github.com/stridelog/stridelog/pkg/activity"
)

// stravaActivity is the subset of the Strava API activity representation this
// application consumes.
type stravaActivity struct {
	Id             int64   `json:"id"`
	Name           string  `json:"name"`
	SportType      string  `json:"sport_type"`
	Distance       float64 `json:"distance"`
	MovingTime     int     `json:"moving_time"`
	StartDateLocal string  `json:"start_date_local"`
}

// toActivity maps the API representation to the local model. The API reports
// start_date_local as an RFC3339 timestamp with a Z suffix even though it is a
// local wall-clock time; it is used as-is for week bucketing.
func (s stravaActivity) toActivity() (activity.Activity, error) {
	startDate, err := time.Parse(time.RFC3339, s.StartDateLocal)
	if err != nil {
		return activity.Activity{}, err
	}
	return activity.Activity{
		ExternalId:     s.Id,
		Name:           s.Name,
		Sport:          s.SportType,
		Distance:       s.Distance,
		MovingTime:     time.Duration(s.MovingTime) * time.Second,
		StartDateLocal: startDate,
	}, nil
}
