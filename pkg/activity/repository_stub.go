package activity

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	nextId     int64
	activities map[int][]Activity // athleteId -> activities
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{activities: map[int][]Activity{}}
}

func (s *RepositoryStub) StoreActivity(ctx context.Context, athleteId int, a Activity) (Activity, error) {
	s.nextId++
	a.Id = s.nextId
	s.activities[athleteId] = append(s.activities[athleteId], a)
	return a, nil
}

func (s *RepositoryStub) UpsertActivity(ctx context.Context, athleteId int, a Activity) (Activity, error) {
	for i, existing := range s.activities[athleteId] {
		if existing.ExternalId == a.ExternalId {
			a.Id = existing.Id
			s.activities[athleteId][i] = a
			return a, nil
		}
	}
	return s.StoreActivity(ctx, athleteId, a)
}

func (s *RepositoryStub) GetAllActivities(ctx context.Context, athleteId int) ([]Activity, error) {
	activities := make([]Activity, len(s.activities[athleteId]))
	copy(activities, s.activities[athleteId])
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].StartDateLocal.After(activities[j].StartDateLocal)
	})
	return activities, nil
}

func (s *RepositoryStub) DeleteActivity(ctx context.Context, athleteId int, id int64) error {
	for i, existing := range s.activities[athleteId] {
		if existing.Id == id {
			s.activities[athleteId] = append(s.activities[athleteId][:i], s.activities[athleteId][i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *RepositoryStub) Reset() {
	s.activities = map[int][]Activity{}
	s.nextId = 0
}
