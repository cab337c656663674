package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/stridelog/stridelog/pkg/athlete"
	log "github.com/sirupsen/logrus"
)

// ErrSourceUnauthenticated is returned by a RemoteSource when the athlete has not
// authorized the external tracking API.
var ErrSourceUnauthenticated = errors.New("activity source is not authenticated")

// RemoteSource fetches the athlete's recent activities from the external tracking API.
type RemoteSource interface {
	RecentActivities(ctx context.Context) ([]Activity, error)
}

type Service interface {
	// ListAll returns the athlete's full known activity history, newest first.
	ListAll(ctx context.Context) ([]Activity, error)
	Record(ctx context.Context, a Activity) (Activity, error)
	Delete(ctx context.Context, id int64) error
	// Sync mirrors recent activities from the remote source into local storage
	// and returns the number of activities stored or updated.
	Sync(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	repo   Repository
	source RemoteSource
}

func NewService(repo Repository, source RemoteSource) *ServiceImpl {
	return &ServiceImpl{repo: repo, source: source}
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]Activity, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.GetAllActivities(ctx, athleteId)
}

func (s *ServiceImpl) Record(ctx context.Context, a Activity) (Activity, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.StoreActivity(ctx, athleteId, a)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.DeleteActivity(ctx, athleteId, id)
}

func (s *ServiceImpl) Sync(ctx context.Context) (int, error) {
	athleteId, err := athlete.CurrentId(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current athlete: %w", err)
	}

	remote, err := s.source.RecentActivities(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch remote activities: %w", err)
	}

	stored := 0
	for _, a := range remote {
		if a.ExternalId == 0 {
			log.Warnf("skipping remote activity without external id: %q", a.Name)
			continue
		}
		if _, err := s.repo.UpsertActivity(ctx, athleteId, a); err != nil {
			return stored, err
		}
		stored++
	}
	log.Debugf("synced %d activities for athlete %d", stored, athleteId)
	return stored, nil
}
