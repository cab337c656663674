package strava

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type Repository interface {
	PrepareAuth(ctx context.Context, athleteId int, nonce string) error
	StoreTokenForNonce(ctx context.Context, nonce string, token *oauth2.Token) error
	GetToken(ctx context.Context, athleteId int) (*oauth2.Token, error)
	DeleteAuth(ctx context.Context, athleteId int) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// PrepareAuth replaces any previous auth row for the athlete with a fresh one
// holding the OAuth state nonce.
func (r *RepositoryImpl) PrepareAuth(ctx context.Context, athleteId int, nonce string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM strava_auth WHERE athlete_id = $1", athleteId)
	if err != nil {
		log.Errorf("failed to delete old Strava auth row for athlete %d: %v", athleteId, err)
		return err
	}
	_, err = r.db.Exec(ctx, "INSERT INTO strava_auth (athlete_id, nonce) VALUES ($1, $2)", athleteId, nonce)
	if err != nil {
		log.Errorf("failed to store Strava auth nonce for athlete %d: %v", athleteId, err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) StoreTokenForNonce(ctx context.Context, nonce string, token *oauth2.Token) error {
	tag, err := r.db.Exec(ctx, "UPDATE strava_auth SET access_token = $1, refresh_token = $2, expiry = $3 WHERE nonce = $4",
		token.AccessToken, token.RefreshToken, token.Expiry.Unix(), nonce)
	if err != nil {
		return fmt.Errorf("unable to store Strava auth token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no pending Strava auth found for nonce")
	}
	return nil
}

// GetToken returns the athlete's stored token, or nil when the athlete never
// completed the OAuth flow.
func (r *RepositoryImpl) GetToken(ctx context.Context, athleteId int) (*oauth2.Token, error) {
	var token oauth2.Token
	var expiryTimestamp *int64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(access_token, ''), COALESCE(refresh_token, ''), expiry FROM strava_auth WHERE athlete_id = $1", athleteId).
		Scan(&token.AccessToken, &token.RefreshToken, &expiryTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to retrieve Strava auth token: %w", err)
	}
	if token.AccessToken == "" {
		// auth row exists but the callback never completed
		return nil, nil
	}
	if expiryTimestamp != nil {
		token.Expiry = time.Unix(*expiryTimestamp, 0)
	}
	return &token, nil
}

func (r *RepositoryImpl) DeleteAuth(ctx context.Context, athleteId int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM strava_auth WHERE athlete_id = $1", athleteId)
	if err != nil {
		log.Errorf("failed to delete Strava auth row for athlete %d: %v", athleteId, err)
		return err
	}
	return nil
}
