package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockProfileService) UpdateAllergies(ctx context.Context, userID uuid.UUID, allergies []string) (*models.User, error) {
	args := m.Called(ctx, userID, allergies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
