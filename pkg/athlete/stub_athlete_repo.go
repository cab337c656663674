package athlete

import (
	"context"
)

type RepoStub struct {
	nextId   int
	athletes map[int]Athlete
}

func NewRepoStub() *RepoStub {
	return &RepoStub{athletes: map[int]Athlete{}}
}

func (s *RepoStub) CreateAthlete(ctx context.Context, a Athlete) (int, error) {
	s.nextId++
	a.Id = s.nextId
	s.athletes[a.Id] = a
	return a.Id, nil
}

func (s *RepoStub) GetAthlete(ctx context.Context, id int) (Athlete, error) {
	if a, exists := s.athletes[id]; exists {
		return a, nil
	}
	return Athlete{}, ErrAthleteNotFound
}

func (s *RepoStub) GetAthleteByUid(ctx context.Context, uid string) (Athlete, error) {
	for _, a := range s.athletes {
		if a.Uid == uid {
			return a, nil
		}
	}
	return Athlete{}, ErrAthleteNotFound
}

func (s *RepoStub) DeleteAthlete(ctx context.Context, id int) error {
	delete(s.athletes, id)
	return nil
}

func (s *RepoStub) GetAllAthletes(ctx context.Context) ([]Athlete, error) {
	athletes := make([]Athlete, 0, len(s.athletes))
	for _, a := range s.athletes {
		athletes = append(athletes, a)
	}
	return athletes, nil
}

func (s *RepoStub) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	for _, a := range s.athletes {
		if a.Username == username {
			return false, nil
		}
	}
	return true, nil
}
