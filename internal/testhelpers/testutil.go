package testhelpers

import (
	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/types"
)

// IntPtr returns a pointer to v
func IntPtr(v int) *int { return &v }

// StrPtr returns a pointer to v
func StrPtr(v string) *string { return &v }

// NewProduct builds a commercial product fixture
func NewProduct(name, category string, skinTypes, concerns []string, rating *int) models.Product {
	return models.Product{
		ID:          uuid.New(),
		Name:        name,
		Brand:       "Test Brand",
		Category:    category,
		SkinTypes:   skinTypes,
		Concerns:    concerns,
		Ingredients: models.JSONBStringArray{},
		Rating:      rating,
		Warnings:    models.JSONBStringArray{},
	}
}

// NewIngredient builds an ingredient fixture
func NewIngredient(name string, level models.SafetyLevel, allergens ...string) models.Ingredient {
	return models.Ingredient{
		Name:            name,
		SafetyLevel:     level,
		Benefits:        models.JSONBStringArray{},
		Warnings:        models.JSONBStringArray{},
		CommonAllergens: models.JSONBStringArray(allergens),
	}
}

// MockTokenValidator is a mock token validator for testing
type MockTokenValidator struct {
	Claims *types.TokenClaims
	Error  error
}

// ValidateToken validates a token and returns claims
func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Claims, nil
}
