package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
)

type ProfileService struct {
	users store.UserStore
}

func NewProfileService(users store.UserStore) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

// UpdateAllergies replaces the user's allergy list
func (s *ProfileService) UpdateAllergies(ctx context.Context, userID uuid.UUID, allergies []string) (*models.User, error) {
	return s.users.UpdateUserAllergies(ctx, userID, NormalizeAllergies(allergies))
}

// NormalizeAllergies trims entries and drops blanks and case-insensitive duplicates
func NormalizeAllergies(allergies []string) models.JSONBStringArray {
	out := make(models.JSONBStringArray, 0, len(allergies))
	seen := make(map[string]bool, len(allergies))
	for _, a := range allergies {
		a = strings.TrimSpace(a)
		key := strings.ToLower(a)
		if a == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}
