package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/testhelpers"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisDraftStore(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	drafts := service.NewRedisDraftStore(client)
	ctx := context.Background()

	draft := &service.RoutineDraft{
		UserID:         uuid.New(),
		PreferenceType: string(models.PreferenceProducts),
		Season:         string(models.SeasonWinter),
		Routine: types.GeneratedRoutine{
			MorningSteps: []models.RoutineStep{{StepNumber: 1, Title: "Gentle Cleanser", Products: []models.StepProduct{}}},
			EveningSteps: []models.RoutineStep{},
		},
	}
	require.NoError(t, drafts.SaveDraft(ctx, draft))
	require.NotEmpty(t, draft.ID)

	ttl, err := client.TTL(ctx, "routine_draft:"+draft.ID).Result()
	require.NoError(t, err)
	assert.InDelta(t, service.DraftTTL.Seconds(), ttl.Seconds(), 5)

	got, err := drafts.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.UserID, got.UserID)
	assert.Equal(t, "Gentle Cleanser", got.Routine.MorningSteps[0].Title)

	require.NoError(t, drafts.DeleteDraft(ctx, draft.ID))
	_, err = drafts.GetDraft(ctx, draft.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
