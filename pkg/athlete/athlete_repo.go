package athlete

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrAthleteNotFound = errors.New("athlete not found")

type Repo interface {
	CreateAthlete(ctx context.Context, a Athlete) (int, error)
	GetAthlete(ctx context.Context, id int) (Athlete, error)
	GetAthleteByUid(ctx context.Context, uid string) (Athlete, error)
	DeleteAthlete(ctx context.Context, id int) error
	GetAllAthletes(ctx context.Context) ([]Athlete, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateAthlete(ctx context.Context, a Athlete) (int, error) {
	query := `INSERT INTO athlete (uid, username, display_name, timezone) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		a.Uid,
		a.Username,
		a.DisplayName,
		a.Settings.Timezone,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create athlete: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetAthlete(ctx context.Context, id int) (Athlete, error) {
	query := `SELECT id, uid, username, display_name, timezone FROM athlete WHERE id = $1`
	return r.scanAthlete(r.db.QueryRow(ctx, query, id))
}

func (r *RepoImpl) GetAthleteByUid(ctx context.Context, uid string) (Athlete, error) {
	query := `SELECT id, uid, username, display_name, timezone FROM athlete WHERE uid = $1`
	return r.scanAthlete(r.db.QueryRow(ctx, query, uid))
}

func (r *RepoImpl) scanAthlete(row pgx.Row) (Athlete, error) {
	var a Athlete
	err := row.Scan(
		&a.Id,
		&a.Uid,
		&a.Username,
		&a.DisplayName,
		&a.Settings.Timezone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Athlete{}, ErrAthleteNotFound
	} else if err != nil {
		log.Errorf("failed to get athlete: %v", err)
		return Athlete{}, err
	}
	return a, nil
}

func (r *RepoImpl) DeleteAthlete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM athlete WHERE id = $1", id)
	if err != nil {
		log.Errorf("failed to delete athlete %d: %v", id, err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetAllAthletes(ctx context.Context) ([]Athlete, error) {
	query := `SELECT id, uid, username, display_name, timezone FROM athlete ORDER BY username`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to list athletes: %v", err)
		return nil, err
	}
	defer rows.Close()

	var athletes []Athlete
	for rows.Next() {
		var a Athlete
		if err := rows.Scan(&a.Id, &a.Uid, &a.Username, &a.DisplayName, &a.Settings.Timezone); err != nil {
			return nil, err
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

func (r *RepoImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM athlete WHERE username = $1", username).Scan(&count)
	if err != nil {
		log.Errorf("failed to check username availability: %v", err)
		return false, err
	}
	return count == 0, nil
}
