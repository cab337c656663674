package strava

import (
	"context"

	"github.com/stridelog/stridelog/pkg/activity"
)

type ClientStub struct {
	Activities []activity.Activity
	Err        error
}

func NewClientStub() *ClientStub {
	return &ClientStub{}
}

func (c *ClientStub) RecentActivities(ctx context.Context) ([]activity.Activity, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Activities, nil
}
