package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/pageza/skinroutine/backend/internal/validation"
	"github.com/sirupsen/logrus"
)

// RoutineStores is the persistence a RoutineService needs
type RoutineStores interface {
	store.AssessmentStore
	store.RoutineStore
}

// RoutineService generates routines and manages saved ones
type RoutineService struct {
	store    RoutineStores
	composer *RoutineComposer
	drafts   DraftStore
	metrics  *metrics.Metrics
	log      *logrus.Logger
}

// NewRoutineService creates a RoutineService. drafts may be nil, in which
// case generated routines are not cached.
func NewRoutineService(s RoutineStores, composer *RoutineComposer, drafts DraftStore, m *metrics.Metrics, log *logrus.Logger) *RoutineService {
	return &RoutineService{
		store:    s,
		composer: composer,
		drafts:   drafts,
		metrics:  m,
		log:      log,
	}
}

// Generate composes a routine and, when drafts are enabled, caches it for ownerID
func (s *RoutineService) Generate(ctx context.Context, ownerID uuid.UUID, req types.GenerateRequest) (*types.GeneratedRoutine, error) {
	routine, err := s.composer.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.drafts == nil {
		return routine, nil
	}

	draft := &RoutineDraft{
		UserID:         ownerID,
		PreferenceType: req.PreferenceType,
		Season:         string(routine.SeasonalAdjustments.Season),
		Routine:        *routine,
	}
	if draft.PreferenceType == "" {
		draft.PreferenceType = string(models.PreferenceProducts)
	}
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		s.log.WithError(err).WithField("user_id", ownerID).Warn("Failed to cache routine draft")
		return routine, nil
	}
	s.metrics.DraftSaved()
	routine.DraftID = draft.ID
	return routine, nil
}

// CreateRoutine saves a routine for ownerID. The referenced assessment must
// exist and belong to the same user.
func (s *RoutineService) CreateRoutine(ctx context.Context, ownerID uuid.UUID, req *types.CreateRoutineRequest) (*models.Routine, error) {
	morning, evening := req.MorningSteps, req.EveningSteps
	season, pref := req.Season, req.PreferenceType

	var draft *RoutineDraft
	if req.DraftID != "" {
		if s.drafts == nil {
			return nil, apperrors.NewNotFound("draft", req.DraftID)
		}
		d, err := s.drafts.GetDraft(ctx, req.DraftID)
		if err != nil {
			return nil, err
		}
		if d.UserID != ownerID {
			return nil, apperrors.NewNotFound("draft", req.DraftID)
		}
		draft = d
		morning, evening = d.Routine.MorningSteps, d.Routine.EveningSteps
		if season == "" {
			season = d.Season
		}
		if pref == "" {
			pref = d.PreferenceType
		}
	}

	r := *req
	r.Name = strings.TrimSpace(r.Name)
	verr, err := validation.Struct(&r)
	if err != nil {
		return nil, err
	}
	// Season, preference and steps may come from a draft instead of the body
	if season == "" {
		verr.Add("season", "is required")
	}
	if pref == "" {
		verr.Add("preferenceType", "is required")
	}
	if len(morning)+len(evening) == 0 {
		verr.Add("morningSteps", "at least one routine step is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	assessment, err := s.store.GetAssessment(ctx, req.AssessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.UserID != ownerID {
		return nil, apperrors.NewNotFound("assessment", req.AssessmentID.String())
	}

	routine := &models.Routine{
		UserID:         ownerID,
		AssessmentID:   assessment.ID,
		Name:           r.Name,
		Season:         models.Season(season),
		PreferenceType: models.PreferenceType(pref),
		MorningSteps:   models.RoutineSteps(morning).Clone(),
		EveningSteps:   models.RoutineSteps(evening).Clone(),
		IsActive:       true,
	}
	if req.IsActive != nil {
		routine.IsActive = *req.IsActive
	}
	if err := s.store.CreateRoutine(ctx, routine); err != nil {
		return nil, fmt.Errorf("failed to save routine: %w", err)
	}

	if draft != nil {
		if err := s.drafts.DeleteDraft(ctx, draft.ID); err != nil {
			s.log.WithError(err).WithField("draft_id", draft.ID).Warn("Failed to delete saved draft")
		}
	}
	return routine, nil
}

func (s *RoutineService) GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error) {
	return s.store.GetRoutine(ctx, id)
}

func (s *RoutineService) ListRoutinesForUser(ctx context.Context, ownerID uuid.UUID) ([]models.Routine, error) {
	return s.store.ListRoutinesByUser(ctx, ownerID)
}

// SetRoutineActive changes only the active flag
func (s *RoutineService) SetRoutineActive(ctx context.Context, id uuid.UUID, active bool) (*models.Routine, error) {
	return s.store.SetRoutineActive(ctx, id, active)
}

// DeleteRoutine reports whether a routine was removed
func (s *RoutineService) DeleteRoutine(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.DeleteRoutine(ctx, id)
}
