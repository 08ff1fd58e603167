package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
)

// CatalogService answers product and ingredient queries
type CatalogService struct {
	store store.CatalogStore
}

func NewCatalogService(s store.CatalogStore) *CatalogService {
	return &CatalogService{store: s}
}

// QueryProducts returns the matching products in display order
func (s *CatalogService) QueryProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error) {
	products, err := s.store.QueryProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	SortProducts(products)
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.store.GetProduct(ctx, id)
}

func (s *CatalogService) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	return s.store.GetIngredientByName(ctx, name)
}

// ListIngredients returns every ingredient sorted by name
func (s *CatalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := s.store.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(ingredients, func(i, j int) bool {
		return ingredients[i].NameKey < ingredients[j].NameKey
	})
	return ingredients, nil
}

// CreateProduct validates and stores a catalog product
func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		verr.Add("name", "is required")
	}
	if strings.TrimSpace(p.Brand) == "" {
		verr.Add("brand", "is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		verr.Add("category", "is required")
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		verr.Add("rating", "must be between 1 and 5")
	}
	if p.Price != nil && *p.Price < 0 {
		verr.Add("price", "must not be negative")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if p.SkinTypes == nil {
		p.SkinTypes = models.JSONBStringArray{}
	}
	if p.Concerns == nil {
		p.Concerns = models.JSONBStringArray{}
	}
	if p.Ingredients == nil {
		p.Ingredients = models.JSONBStringArray{}
	}
	if p.Warnings == nil {
		p.Warnings = models.JSONBStringArray{}
	}
	return s.store.CreateProduct(ctx, p)
}

// CreateIngredient validates and stores an ingredient. Names are unique ignoring case.
func (s *CatalogService) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	verr := &apperrors.ValidationError{}
	if strings.TrimSpace(ing.Name) == "" {
		verr.Add("name", "is required")
	}
	if !ing.SafetyLevel.Valid() {
		verr.Add("safetyLevel", "must be one of safe, caution, warning")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if ing.Benefits == nil {
		ing.Benefits = models.JSONBStringArray{}
	}
	if ing.Warnings == nil {
		ing.Warnings = models.JSONBStringArray{}
	}
	if ing.CommonAllergens == nil {
		ing.CommonAllergens = models.JSONBStringArray{}
	}
	return s.store.CreateIngredient(ctx, ing)
}

// SortProducts orders products by rating (highest first, unrated last), then
// by name ignoring case, then by id.
func SortProducts(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch {
		case a.Rating != nil && b.Rating == nil:
			return true
		case a.Rating == nil && b.Rating != nil:
			return false
		case a.Rating != nil && *a.Rating != *b.Rating:
			return *a.Rating > *b.Rating
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.ID.String() < b.ID.String()
	})
}
