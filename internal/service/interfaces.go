package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateAllergies(ctx context.Context, userID uuid.UUID, allergies []string) (*models.User, error)
}

// ICatalogService defines the interface for catalog queries
type ICatalogService interface {
	QueryProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error
}

// ISafetyService defines the interface for ingredient safety analysis
type ISafetyService interface {
	Classify(ctx context.Context, ingredient string, allergies []string) (models.SafetyLevel, error)
	Annotate(ctx context.Context, ingredient string, allergies []string) (*types.IngredientAnalysis, error)
	AnalyzeIngredients(ctx context.Context, allergies []string) ([]types.IngredientAnalysis, error)
	AnalyzeProduct(ctx context.Context, productID uuid.UUID, allergies []string) (*types.ProductSafety, error)
}

// IAssessmentService defines the interface for questionnaire results
type IAssessmentService interface {
	CreateAssessment(ctx context.Context, ownerID uuid.UUID, req *types.CreateAssessmentRequest) (*models.Assessment, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error)
	ListAssessmentsForUser(ctx context.Context, ownerID uuid.UUID) ([]models.Assessment, error)
}

// IRoutineService defines the interface for routine generation and lifecycle
type IRoutineService interface {
	Generate(ctx context.Context, ownerID uuid.UUID, req types.GenerateRequest) (*types.GeneratedRoutine, error)
	CreateRoutine(ctx context.Context, ownerID uuid.UUID, req *types.CreateRoutineRequest) (*models.Routine, error)
	GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error)
	ListRoutinesForUser(ctx context.Context, ownerID uuid.UUID) ([]models.Routine, error)
	SetRoutineActive(ctx context.Context, id uuid.UUID, active bool) (*models.Routine, error)
	DeleteRoutine(ctx context.Context, id uuid.UUID) (bool, error)
}

// DraftStore caches generated routines between generation and saving
type DraftStore interface {
	SaveDraft(ctx context.Context, draft *RoutineDraft) error
	GetDraft(ctx context.Context, id string) (*RoutineDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}
