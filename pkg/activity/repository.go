package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	StoreActivity(ctx context.Context, athleteId int, a Activity) (Activity, error)
	// UpsertActivity stores an externally-sourced activity, updating the existing
	// row when the same external id was synced before.
	UpsertActivity(ctx context.Context, athleteId int, a Activity) (Activity, error)
	GetAllActivities(ctx context.Context, athleteId int) ([]Activity, error)
	DeleteActivity(ctx context.Context, athleteId int, id int64) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreActivity(ctx context.Context, athleteId int, a Activity) (Activity, error) {
	query := `INSERT INTO activity (athlete_id, external_id, name, sport, distance_m, moving_time_sec, start_date_local)
				VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7) RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		athleteId,
		a.ExternalId,
		a.Name,
		a.Sport,
		a.Distance,
		int64(a.MovingTime.Seconds()),
		a.StartDateLocal,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store activity: %w", err)
		log.Error(err)
		return Activity{}, err
	}
	a.Id = id
	return a, nil
}

func (r *RepositoryImpl) UpsertActivity(ctx context.Context, athleteId int, a Activity) (Activity, error) {
	query := `INSERT INTO activity (athlete_id, external_id, name, sport, distance_m, moving_time_sec, start_date_local)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (athlete_id, external_id) DO UPDATE SET
					name = EXCLUDED.name,
					sport = EXCLUDED.sport,
					distance_m = EXCLUDED.distance_m,
					moving_time_sec = EXCLUDED.moving_time_sec,
					start_date_local = EXCLUDED.start_date_local
				RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		athleteId,
		a.ExternalId,
		a.Name,
		a.Sport,
		a.Distance,
		int64(a.MovingTime.Seconds()),
		a.StartDateLocal,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not upsert activity: %w", err)
		log.Error(err)
		return Activity{}, err
	}
	a.Id = id
	return a, nil
}

func (r *RepositoryImpl) GetAllActivities(ctx context.Context, athleteId int) ([]Activity, error) {
	query := `SELECT id, COALESCE(external_id, 0), name, sport, distance_m, moving_time_sec, start_date_local
				FROM activity WHERE athlete_id = $1 ORDER BY start_date_local DESC`
	rows, err := r.db.Query(ctx, query, athleteId)
	if err != nil {
		err := fmt.Errorf("could not query activities: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		var movingTimeSec int64
		if err := rows.Scan(&a.Id, &a.ExternalId, &a.Name, &a.Sport, &a.Distance, &movingTimeSec, &a.StartDateLocal); err != nil {
			return nil, err
		}
		a.MovingTime = time.Duration(movingTimeSec) * time.Second
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *RepositoryImpl) DeleteActivity(ctx context.Context, athleteId int, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM activity WHERE athlete_id = $1 AND id = $2", athleteId, id)
	if err != nil {
		err := fmt.Errorf("could not delete activity: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
