package test_utils

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertTestAthlete creates an athlete row directly and returns its id, so that
// repository tests can satisfy the athlete foreign key without going through the
// athlete package.
func InsertTestAthlete(t *testing.T, ctx context.Context, db *pgxpool.Pool, username string) int {
	t.Helper()

	var id int
	err := db.QueryRow(ctx,
		"INSERT INTO athlete (uid, username, display_name, timezone) VALUES ($1, $2, $3, $4) RETURNING id",
		"test-uid-"+username, username, "Test "+username, "Europe/Warsaw",
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert test athlete: %v", err)
	}
	return id
}
