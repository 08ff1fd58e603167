package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockAssessmentService is a mock implementation of the assessment service
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) CreateAssessment(ctx context.Context, ownerID uuid.UUID, req *types.CreateAssessmentRequest) (*models.Assessment, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockAssessmentService) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockAssessmentService) ListAssessmentsForUser(ctx context.Context, ownerID uuid.UUID) ([]models.Assessment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Assessment), args.Error(1)
}

// MockRoutineService is a mock implementation of the routine service
type MockRoutineService struct {
	mock.Mock
}

func (m *MockRoutineService) Generate(ctx context.Context, ownerID uuid.UUID, req types.GenerateRequest) (*types.GeneratedRoutine, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GeneratedRoutine), args.Error(1)
}

func (m *MockRoutineService) CreateRoutine(ctx context.Context, ownerID uuid.UUID, req *types.CreateRoutineRequest) (*models.Routine, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineService) GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineService) ListRoutinesForUser(ctx context.Context, ownerID uuid.UUID) ([]models.Routine, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Routine), args.Error(1)
}

func (m *MockRoutineService) SetRoutineActive(ctx context.Context, id uuid.UUID, active bool) (*models.Routine, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineService) DeleteRoutine(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
