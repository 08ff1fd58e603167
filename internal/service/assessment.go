package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/pageza/skinroutine/backend/internal/validation"
)

type AssessmentService struct {
	store store.AssessmentStore
}

func NewAssessmentService(s store.AssessmentStore) *AssessmentService {
	return &AssessmentService{store: s}
}

// CreateAssessment validates a questionnaire and stores it for ownerID.
// Every missing or malformed field is reported at once.
func (s *AssessmentService) CreateAssessment(ctx context.Context, ownerID uuid.UUID, req *types.CreateAssessmentRequest) (*models.Assessment, error) {
	r := *req
	r.SkinType = strings.TrimSpace(r.SkinType)
	r.Concerns = nonBlank(r.Concerns)
	r.AgeRange = strings.TrimSpace(r.AgeRange)
	r.Budget = strings.TrimSpace(r.Budget)
	r.TimeAvailable = strings.TrimSpace(r.TimeAvailable)

	verr, err := validation.Struct(&r)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(r.Lifestyle))
	for key := range r.Lifestyle {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if r.Lifestyle[key].Kind() == 0 {
			verr.Add("lifestyle."+key, "must be a string, number or boolean")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	assessment := &models.Assessment{
		UserID:        ownerID,
		SkinType:      models.SkinType(r.SkinType),
		Concerns:      models.JSONBStringArray(r.Concerns),
		AgeRange:      r.AgeRange,
		Budget:        r.Budget,
		TimeAvailable: models.TimeAvailable(r.TimeAvailable),
		Lifestyle:     r.Lifestyle.Clone(),
	}
	if err := s.store.CreateAssessment(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *AssessmentService) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	return s.store.GetAssessment(ctx, id)
}

func (s *AssessmentService) ListAssessmentsForUser(ctx context.Context, ownerID uuid.UUID) ([]models.Assessment, error) {
	return s.store.ListAssessmentsByUser(ctx, ownerID)
}
