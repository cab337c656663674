package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stridelog/stridelog/pkg/activity"
	"github.com/stridelog/stridelog/pkg/athlete"
	log "github.com/sirupsen/logrus"
)

const (
	baseURL = "https://www.strava.com/api/v3"
	// activitiesPerPage is the page size used when listing recent activities.
	activitiesPerPage = 100
)

// Client implements activity.RemoteSource against the Strava API.
type Client interface {
	// RecentActivities returns the current athlete's most recent activities,
	// mapped into the local model. Returns activity.ErrSourceUnauthenticated when
	// the athlete has not connected their Strava account.
	RecentActivities(ctx context.Context) ([]activity.Activity, error)
}

type ClientImpl struct {
	auth    *StravaAuth
	baseUrl string
}

func NewClient(auth *StravaAuth) *ClientImpl {
	return &ClientImpl{auth: auth, baseUrl: baseURL}
}

func (c *ClientImpl) prepareClient(ctx context.Context) (*http.Client, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current athlete: %w", err)
	}

	client, err := c.auth.getClient(ctx, athleteId)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, activity.ErrSourceUnauthenticated
	}
	return client, nil
}

func (c *ClientImpl) RecentActivities(ctx context.Context) ([]activity.Activity, error) {
	client, err := c.prepareClient(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/athlete/activities?per_page=%d", c.baseUrl, activitiesPerPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities from Strava: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, activity.ErrSourceUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected Strava API response status: %s", resp.Status)
	}

	var stravaActivities []stravaActivity
	if err := json.NewDecoder(resp.Body).Decode(&stravaActivities); err != nil {
		return nil, fmt.Errorf("failed to decode Strava activities: %w", err)
	}

	activities := make([]activity.Activity, 0, len(stravaActivities))
	for _, sa := range stravaActivities {
		a, err := sa.toActivity()
		if err != nil {
			log.Warnf("skipping Strava activity %d with malformed start date: %v", sa.Id, err)
			continue
		}
		activities = append(activities, a)
	}
	return activities, nil
}
