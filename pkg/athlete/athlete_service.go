package athlete

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	GetCurrentAthlete(ctx context.Context) (Athlete, error)
	CreateAthlete(ctx context.Context, a Athlete) (Athlete, error)
	GetAthlete(ctx context.Context, id int) (Athlete, error)
	GetAthleteByUid(ctx context.Context, uid string) (Athlete, error)
	DeleteAthlete(ctx context.Context, id int) error
	GetAllAthletes(ctx context.Context) ([]Athlete, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetCurrentAthlete(ctx context.Context) (Athlete, error) {
	id, err := CurrentId(ctx)
	if err != nil {
		return Athlete{}, fmt.Errorf("failed to get current athlete: %w", err)
	}
	return s.repo.GetAthlete(ctx, id)
}

func (s *ServiceImpl) CreateAthlete(ctx context.Context, a Athlete) (Athlete, error) {
	if a.Uid == "" {
		a.Uid = uuid.New().String()
	}
	id, err := s.repo.CreateAthlete(ctx, a)
	if err != nil {
		return Athlete{}, err
	}
	a.Id = id
	return a, nil
}

func (s *ServiceImpl) GetAthlete(ctx context.Context, id int) (Athlete, error) {
	return s.repo.GetAthlete(ctx, id)
}

func (s *ServiceImpl) GetAthleteByUid(ctx context.Context, uid string) (Athlete, error) {
	return s.repo.GetAthleteByUid(ctx, uid)
}

func (s *ServiceImpl) DeleteAthlete(ctx context.Context, id int) error {
	return s.repo.DeleteAthlete(ctx, id)
}

func (s *ServiceImpl) GetAllAthletes(ctx context.Context) ([]Athlete, error) {
	return s.repo.GetAllAthletes(ctx)
}

func (s *ServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return s.repo.IsUsernameAvailable(ctx, username)
}
