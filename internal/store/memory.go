package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
)

// MemoryStore keeps every record in process memory. Reads and writes hand
// out copies so callers can never mutate stored state.
type MemoryStore struct {
	mu          sync.RWMutex
	products    map[uuid.UUID]models.Product
	ingredients map[uuid.UUID]models.Ingredient
	users       map[uuid.UUID]models.User
	assessments map[uuid.UUID]models.Assessment
	routines    map[uuid.UUID]models.Routine
	now         func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:    make(map[uuid.UUID]models.Product),
		ingredients: make(map[uuid.UUID]models.Ingredient),
		users:       make(map[uuid.UUID]models.User),
		assessments: make(map[uuid.UUID]models.Assessment),
		routines:    make(map[uuid.UUID]models.Routine),
		now:         time.Now,
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) QueryProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range s.products {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.NewNotFound("product", id.String())
	}
	out := p.Clone()
	return &out, nil
}

func (s *MemoryStore) CreateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if _, exists := s.products[product.ID]; exists {
		return apperrors.NewConflict("id", product.ID.String())
	}
	now := s.now()
	product.CreatedAt, product.UpdatedAt = now, now
	s.products[product.ID] = product.Clone()
	return nil
}

func (s *MemoryStore) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ing, ok := s.ingredients[id]
	if !ok {
		return nil, apperrors.NewNotFound("ingredient", id.String())
	}
	out := ing.Clone()
	return &out, nil
}

func (s *MemoryStore) GetIngredientByName(ctx context.Context, name string) (*models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := models.IngredientKey(name)
	for _, ing := range s.ingredients {
		if ing.NameKey == key {
			out := ing.Clone()
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFound("ingredient", name)
}

func (s *MemoryStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ingredient, 0, len(s.ingredients))
	for _, ing := range s.ingredients {
		out = append(out, ing.Clone())
	}
	return out, nil
}

func (s *MemoryStore) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ingredient.NameKey = models.IngredientKey(ingredient.Name)
	for _, existing := range s.ingredients {
		if existing.NameKey == ingredient.NameKey {
			return apperrors.NewConflict("name", ingredient.Name)
		}
	}
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	now := s.now()
	ingredient.CreatedAt, ingredient.UpdatedAt = now, now
	s.ingredients[ingredient.ID] = ingredient.Clone()
	return nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return apperrors.NewConflict("username", user.Username)
		}
		if existing.Email == user.Email {
			return apperrors.NewConflict("email", user.Email)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Allergies == nil {
		user.Allergies = models.JSONBStringArray{}
	}
	now := s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("user", id.String())
	}
	out := u.Clone()
	return &out, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			out := u.Clone()
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFound("user", email)
}

func (s *MemoryStore) UpdateUserAllergies(ctx context.Context, id uuid.UUID, allergies []string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("user", id.String())
	}
	u.Allergies = models.JSONBStringArray(allergies).Clone()
	u.UpdatedAt = s.now()
	s.users[id] = u
	out := u.Clone()
	return &out, nil
}

func (s *MemoryStore) CreateAssessment(ctx context.Context, assessment *models.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	assessment.CreatedAt = s.now()
	s.assessments[assessment.ID] = assessment.Clone()
	return nil
}

func (s *MemoryStore) GetAssessment(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[id]
	if !ok {
		return nil, apperrors.NewNotFound("assessment", id.String())
	}
	out := a.Clone()
	return &out, nil
}

func (s *MemoryStore) ListAssessmentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assessment, 0)
	for _, a := range s.assessments {
		if a.UserID == userID {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateRoutine(ctx context.Context, routine *models.Routine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if routine.ID == uuid.Nil {
		routine.ID = uuid.New()
	}
	now := s.now()
	routine.CreatedAt, routine.UpdatedAt = now, now
	s.routines[routine.ID] = routine.Clone()
	return nil
}

func (s *MemoryStore) GetRoutine(ctx context.Context, id uuid.UUID) (*models.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.routines[id]
	if !ok {
		return nil, apperrors.NewNotFound("routine", id.String())
	}
	out := r.Clone()
	return &out, nil
}

func (s *MemoryStore) ListRoutinesByUser(ctx context.Context, userID uuid.UUID) ([]models.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Routine, 0)
	for _, r := range s.routines {
		if r.UserID == userID {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) SetRoutineActive(ctx context.Context, id uuid.UUID, active bool) (*models.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.routines[id]
	if !ok {
		return nil, apperrors.NewNotFound("routine", id.String())
	}
	r.IsActive = active
	r.UpdatedAt = s.now()
	s.routines[id] = r
	out := r.Clone()
	return &out, nil
}

func (s *MemoryStore) DeleteRoutine(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routines[id]; !ok {
		return false, nil
	}
	delete(s.routines, id)
	return true, nil
}
