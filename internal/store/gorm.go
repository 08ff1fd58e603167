package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
	"gorm.io/gorm"
)

// GormStore persists records through gorm (PostgreSQL or SQLite)
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB exposes the underlying connection
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// QueryProducts pushes the scalar constraints down to SQL and applies the
// set intersections in Go so both dialects behave the same.
func (s *GormStore) QueryProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.IsHomeRemedy != nil {
		query = query.Where("is_home_remedy = ?", *filter.IsHomeRemedy)
	}

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	out := make([]models.Product, 0, len(rows))
	for _, p := range rows {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFoundOr(err, "product", id.String())
	}
	return &p, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("id", product.ID.String())
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *GormStore) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&ing).Error; err != nil {
		return nil, notFoundOr(err, "ingredient", id.String())
	}
	return &ing, nil
}

func (s *GormStore) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.db.WithContext(ctx).Where("name_key = ?", models.IngredientKey(name)).First(&ing).Error; err != nil {
		return nil, notFoundOr(err, "ingredient", name)
	}
	return &ing, nil
}

func (s *GormStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return out, nil
}

func (s *GormStore) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.NameKey = models.IngredientKey(ingredient.Name)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("name_key = ?", ingredient.NameKey).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check ingredient name: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflict("name", ingredient.Name)
	}

	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("name", ingredient.Name)
		}
		return fmt.Errorf("failed to create ingredient: %w", err)
	}
	return nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ? OR email = ?", user.Username, user.Email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Username == user.Username {
			return apperrors.NewConflict("username", user.Username)
		}
		return apperrors.NewConflict("email", user.Email)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Allergies == nil {
		user.Allergies = models.JSONBStringArray{}
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("email", user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *GormStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFoundOr(err, "user", id.String())
	}
	return &u, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundOr(err, "user", email)
	}
	return &u, nil
}

func (s *GormStore) UpdateUserAllergies(ctx context.Context, id uuid.UUID, allergies []string) (*models.User, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"allergies":  models.JSONBStringArray(allergies),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update allergies: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("user", id.String())
	}
	return s.GetUserByID(ctx, id)
}

func (s *GormStore) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(assessment).Error; err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (s *GormStore) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	var a models.Assessment
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, notFoundOr(err, "assessment", id.String())
	}
	return &a, nil
}

func (s *GormStore) ListAssessmentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Assessment, error) {
	var out []models.Assessment
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return out, nil
}

func (s *GormStore) CreateRoutine(ctx context.Context, routine *models.Routine) error {
	if routine.ID == uuid.Nil {
		routine.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(routine).Error; err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}
	return nil
}

func (s *GormStore) GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error) {
	var r models.Routine
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		return nil, notFoundOr(err, "routine", id.String())
	}
	return &r, nil
}

func (s *GormStore) ListRoutinesByUser(ctx context.Context, userID uuid.UUID) ([]models.Routine, error) {
	var out []models.Routine
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}
	return out, nil
}

func (s *GormStore) SetRoutineActive(ctx context.Context, id uuid.UUID, active bool) (*models.Routine, error) {
	res := s.db.WithContext(ctx).Model(&models.Routine{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update routine: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewNotFound("routine", id.String())
	}
	return s.GetRoutine(ctx, id)
}

func (s *GormStore) DeleteRoutine(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Routine{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete routine: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(resource, id)
	}
	return fmt.Errorf("failed to load %s: %w", resource, err)
}
