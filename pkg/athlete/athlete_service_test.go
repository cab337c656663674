package athlete

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAthleteAssignsUid(t *testing.T) {
	// given
	service := NewService(NewRepoStub())

	// when
	created, err := service.CreateAthlete(context.Background(), Athlete{
		Username:    "runner",
		DisplayName: "Runner",
		Settings:    Settings{Timezone: "Europe/Warsaw"},
	})

	// then
	assert.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.NotEmpty(t, created.Uid)
}

func TestCreateAthleteKeepsProvidedUid(t *testing.T) {
	// given
	service := NewService(NewRepoStub())

	// when
	created, err := service.CreateAthlete(context.Background(), Athlete{
		Uid:      "existing-uid",
		Username: "runner",
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, "existing-uid", created.Uid)
}

func TestGetCurrentAthleteRequiresContext(t *testing.T) {
	// given
	service := NewService(NewRepoStub())

	// when
	_, err := service.GetCurrentAthlete(context.Background())

	// then
	assert.ErrorIs(t, err, ErrNoAthlete)
}

func TestGetCurrentAthleteReadsContextId(t *testing.T) {
	// given
	service := NewService(NewRepoStub())
	created, err := service.CreateAthlete(context.Background(), Athlete{Username: "runner"})
	assert.NoError(t, err)
	ctx := WithAthlete(context.Background(), created)

	// when
	current, err := service.GetCurrentAthlete(ctx)

	// then
	assert.NoError(t, err)
	assert.Equal(t, created.Id, current.Id)
}

func TestIsUsernameAvailable(t *testing.T) {
	// given
	service := NewService(NewRepoStub())
	_, err := service.CreateAthlete(context.Background(), Athlete{Username: "taken"})
	assert.NoError(t, err)

	// when
	takenAvailable, err1 := service.IsUsernameAvailable(context.Background(), "taken")
	freeAvailable, err2 := service.IsUsernameAvailable(context.Background(), "free")

	// then
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.False(t, takenAvailable)
	assert.True(t, freeAvailable)
}
