package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrPlanNotFound = errors.New("no training plan for athlete")
var ErrWorkoutNotFound = errors.New("planned workout not found")

type Repository interface {
	// GetPlan returns the athlete's full plan in authoring order.
	// Returns ErrPlanNotFound when the athlete has no planned workouts at all.
	GetPlan(ctx context.Context, athleteId int) ([]PlannedWorkout, error)
	StoreWorkout(ctx context.Context, athleteId int, w PlannedWorkout) (PlannedWorkout, error)
	UpdateWorkout(ctx context.Context, athleteId int, w PlannedWorkout) (PlannedWorkout, error)
	DeleteWorkout(ctx context.Context, athleteId int, workoutId int) (bool, error)
	FindMaxPosition(ctx context.Context, athleteId int) (int, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetPlan(ctx context.Context, athleteId int) ([]PlannedWorkout, error) {
	query := `SELECT id, day, distance_m, target_duration_sec, title, description, position
				FROM planned_workout WHERE athlete_id = $1 ORDER BY position`
	rows, err := r.db.Query(ctx, query, athleteId)
	if err != nil {
		err := fmt.Errorf("could not query planned workouts: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var workouts []PlannedWorkout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrPlanNotFound
	}
	return workouts, nil
}

func (r *RepositoryImpl) StoreWorkout(ctx context.Context, athleteId int, w PlannedWorkout) (PlannedWorkout, error) {
	query := `INSERT INTO planned_workout (athlete_id, day, distance_m, target_duration_sec, title, description, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		athleteId,
		w.Day,
		w.Distance,
		int64(w.TargetDuration.Seconds()),
		w.Title,
		w.Description,
		w.Position,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store planned workout: %w", err)
		log.Error(err)
		return PlannedWorkout{}, err
	}
	w.Id = id
	return w, nil
}

func (r *RepositoryImpl) UpdateWorkout(ctx context.Context, athleteId int, w PlannedWorkout) (PlannedWorkout, error) {
	query := `UPDATE planned_workout SET day = $1, distance_m = $2, target_duration_sec = $3, title = $4, description = $5
				WHERE athlete_id = $6 AND id = $7
				RETURNING id, day, distance_m, target_duration_sec, title, description, position`
	row := r.db.QueryRow(ctx, query,
		w.Day,
		w.Distance,
		int64(w.TargetDuration.Seconds()),
		w.Title,
		w.Description,
		athleteId,
		w.Id,
	)
	updated, err := scanWorkout(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return PlannedWorkout{}, ErrWorkoutNotFound
	} else if err != nil {
		err := fmt.Errorf("could not update planned workout: %w", err)
		log.Error(err)
		return PlannedWorkout{}, err
	}
	return updated, nil
}

func (r *RepositoryImpl) DeleteWorkout(ctx context.Context, athleteId int, workoutId int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM planned_workout WHERE athlete_id = $1 AND id = $2", athleteId, workoutId)
	if err != nil {
		err := fmt.Errorf("could not delete planned workout: %w", err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) FindMaxPosition(ctx context.Context, athleteId int) (int, error) {
	var maxPosition int
	err := r.db.QueryRow(ctx, "SELECT COALESCE(MAX(position), 0) FROM planned_workout WHERE athlete_id = $1", athleteId).
		Scan(&maxPosition)
	if err != nil {
		log.Errorf("could not find max workout position: %v", err)
		return 0, err
	}
	return maxPosition, nil
}

func scanWorkout(row pgx.Row) (PlannedWorkout, error) {
	var w PlannedWorkout
	var targetDurationSec int64
	err := row.Scan(&w.Id, &w.Day, &w.Distance, &targetDurationSec, &w.Title, &w.Description, &w.Position)
	if err != nil {
		return PlannedWorkout{}, err
	}
	w.TargetDuration = time.Duration(targetDurationSec) * time.Second
	return w, nil
}
