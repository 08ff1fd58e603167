package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/logger"
	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routineFixture struct {
	store  *store.MemoryStore
	drafts *memoryDrafts
	svc    *service.RoutineService
	owner  uuid.UUID
	asmt   *models.Assessment
}

func newRoutineFixture(t *testing.T, withDrafts bool) *routineFixture {
	t.Helper()
	s := seededStore(t)
	f := &routineFixture{store: s, owner: uuid.New()}

	var drafts service.DraftStore
	if withDrafts {
		f.drafts = newMemoryDrafts()
		drafts = f.drafts
	}
	f.svc = service.NewRoutineService(s, service.NewRoutineComposer(s, nil), drafts, nil, logger.Discard())

	asmt, err := service.NewAssessmentService(s).CreateAssessment(context.Background(), f.owner, validAssessment())
	require.NoError(t, err)
	f.asmt = asmt
	return f
}

func inlineRoutine(assessmentID uuid.UUID) *types.CreateRoutineRequest {
	return &types.CreateRoutineRequest{
		AssessmentID:   assessmentID,
		Name:           "Summer routine",
		Season:         "summer",
		PreferenceType: "products",
		MorningSteps: []models.RoutineStep{{
			StepNumber:  1,
			Title:       "Gentle Cleanser",
			Description: "Remove overnight buildup with a hydrating cleanser",
			Products:    []models.StepProduct{{ID: uuid.New(), Name: "Cleanser", Type: models.ProductTypeCommercial}},
		}},
	}
}

func TestCreateRoutineInline(t *testing.T) {
	f := newRoutineFixture(t, false)
	ctx := context.Background()

	routine, err := f.svc.CreateRoutine(ctx, f.owner, inlineRoutine(f.asmt.ID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, routine.ID)
	assert.True(t, routine.IsActive)
	assert.Equal(t, f.owner, routine.UserID)
	assert.Equal(t, models.SeasonSummer, routine.Season)

	list, err := f.svc.ListRoutinesForUser(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, routine.ID, list[0].ID)
}

func TestCreateRoutineInactive(t *testing.T) {
	f := newRoutineFixture(t, false)
	req := inlineRoutine(f.asmt.ID)
	inactive := false
	req.IsActive = &inactive

	routine, err := f.svc.CreateRoutine(context.Background(), f.owner, req)
	require.NoError(t, err)
	assert.False(t, routine.IsActive)
}

func TestCreateRoutineValidation(t *testing.T) {
	f := newRoutineFixture(t, false)

	_, err := f.svc.CreateRoutine(context.Background(), f.owner, &types.CreateRoutineRequest{
		Season:         "monsoon",
		PreferenceType: "pills",
		EveningSteps:   []models.RoutineStep{{Products: []models.StepProduct{{Name: "x", Type: "other"}}}},
	})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{
		"name",
		"assessmentId",
		"season",
		"preferenceType",
		"eveningSteps[0].stepNumber",
		"eveningSteps[0].title",
		"eveningSteps[0].products[0].type",
	}, fieldNames(t, err))

	req := inlineRoutine(f.asmt.ID)
	req.MorningSteps = nil
	_, err = f.svc.CreateRoutine(context.Background(), f.owner, req)
	assert.Equal(t, []string{"morningSteps"}, fieldNames(t, err))
}

func TestCreateRoutineRequiresOwnedAssessment(t *testing.T) {
	f := newRoutineFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.CreateRoutine(ctx, f.owner, inlineRoutine(uuid.New()))
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.CreateRoutine(ctx, uuid.New(), inlineRoutine(f.asmt.ID))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRoutineActiveToggleAndDelete(t *testing.T) {
	f := newRoutineFixture(t, false)
	ctx := context.Background()

	routine, err := f.svc.CreateRoutine(ctx, f.owner, inlineRoutine(f.asmt.ID))
	require.NoError(t, err)

	updated, err := f.svc.SetRoutineActive(ctx, routine.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = f.svc.SetRoutineActive(ctx, routine.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Equal(t, routine.Name, updated.Name)

	deleted, err := f.svc.DeleteRoutine(ctx, routine.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.svc.GetRoutine(ctx, routine.ID)
	assert.True(t, apperrors.IsNotFound(err))

	deleted, err = f.svc.DeleteRoutine(ctx, routine.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = f.svc.SetRoutineActive(ctx, routine.ID, true)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGenerateWithoutDrafts(t *testing.T) {
	f := newRoutineFixture(t, false)

	routine, err := f.svc.Generate(context.Background(), f.owner, oilyAcneRequest())
	require.NoError(t, err)
	assert.Empty(t, routine.DraftID)
}

func TestGenerateSavesDraft(t *testing.T) {
	f := newRoutineFixture(t, true)
	m := metrics.New()
	f.svc = service.NewRoutineService(f.store, service.NewRoutineComposer(f.store, m), f.drafts, m, logger.Discard())
	ctx := context.Background()

	generated, err := f.svc.Generate(ctx, f.owner, oilyAcneRequest())
	require.NoError(t, err)
	require.NotEmpty(t, generated.DraftID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DraftsSaved))

	routine, err := f.svc.CreateRoutine(ctx, f.owner, &types.CreateRoutineRequest{
		AssessmentID: f.asmt.ID,
		Name:         "From draft",
		DraftID:      generated.DraftID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SeasonSummer, routine.Season)
	assert.Equal(t, models.PreferenceProducts, routine.PreferenceType)
	assert.Len(t, routine.MorningSteps, 4)
	assert.Len(t, routine.EveningSteps, 3)

	_, err = f.drafts.GetDraft(ctx, generated.DraftID)
	assert.True(t, apperrors.IsNotFound(err), "draft is removed once saved")
}

func TestDraftBelongsToOwner(t *testing.T) {
	f := newRoutineFixture(t, true)
	ctx := context.Background()

	generated, err := f.svc.Generate(ctx, uuid.New(), oilyAcneRequest())
	require.NoError(t, err)

	_, err = f.svc.CreateRoutine(ctx, f.owner, &types.CreateRoutineRequest{
		AssessmentID: f.asmt.ID,
		Name:         "Someone else's",
		DraftID:      generated.DraftID,
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGenerateIgnoresDraftFailure(t *testing.T) {
	f := newRoutineFixture(t, true)
	f.drafts.saveErr = errors.New("redis down")

	generated, err := f.svc.Generate(context.Background(), f.owner, oilyAcneRequest())
	require.NoError(t, err)
	assert.Empty(t, generated.DraftID)
	assert.NotEmpty(t, generated.MorningSteps)
}
