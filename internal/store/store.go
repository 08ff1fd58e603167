// Package store persists catalog records, users, assessments and routines.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
)

// ProductFilter narrows a product query. A nil field imposes no constraint;
// a non-nil empty set matches nothing.
type ProductFilter struct {
	SkinTypes    []string
	Concerns     []string
	Category     *string
	IsHomeRemedy *bool
}

// CatalogStore holds the shared product and ingredient catalog
type CatalogStore interface {
	QueryProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
}

// UserStore holds accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserAllergies(ctx context.Context, id uuid.UUID, allergies []string) (*models.User, error)
}

// AssessmentStore holds questionnaire results
type AssessmentStore interface {
	CreateAssessment(ctx context.Context, assessment *models.Assessment) error
	GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error)
	ListAssessmentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Assessment, error)
}

// RoutineStore holds saved routines
type RoutineStore interface {
	CreateRoutine(ctx context.Context, routine *models.Routine) error
	GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error)
	ListRoutinesByUser(ctx context.Context, userID uuid.UUID) ([]models.Routine, error)
	SetRoutineActive(ctx context.Context, id uuid.UUID, active bool) (*models.Routine, error)
	DeleteRoutine(ctx context.Context, id uuid.UUID) (bool, error)
}

// Store is the full persistence surface used by the services
type Store interface {
	CatalogStore
	UserStore
	AssessmentStore
	RoutineStore
	Ping(ctx context.Context) error
}
