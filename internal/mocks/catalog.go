package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) QueryProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogService) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockCatalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

// MockSafetyService is a mock implementation of the safety classifier
type MockSafetyService struct {
	mock.Mock
}

func (m *MockSafetyService) Classify(ctx context.Context, ingredient string, allergies []string) (models.SafetyLevel, error) {
	args := m.Called(ctx, ingredient, allergies)
	return args.Get(0).(models.SafetyLevel), args.Error(1)
}

func (m *MockSafetyService) Annotate(ctx context.Context, ingredient string, allergies []string) (*types.IngredientAnalysis, error) {
	args := m.Called(ctx, ingredient, allergies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.IngredientAnalysis), args.Error(1)
}

func (m *MockSafetyService) AnalyzeIngredients(ctx context.Context, allergies []string) ([]types.IngredientAnalysis, error) {
	args := m.Called(ctx, allergies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.IngredientAnalysis), args.Error(1)
}

func (m *MockSafetyService) AnalyzeProduct(ctx context.Context, productID uuid.UUID, allergies []string) (*types.ProductSafety, error) {
	args := m.Called(ctx, productID, allergies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProductSafety), args.Error(1)
}
