package store_test

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"memory": func(t *testing.T) store.Store { return store.NewMemoryStore() },
		"sqlite": func(t *testing.T) store.Store { return store.NewGormStore(testhelpers.SetupSQLite(t)) },
		"postgres": func(t *testing.T) store.Store {
			return store.NewGormStore(testhelpers.SetupPostgres(t))
		},
	}
}

func seedProducts(t *testing.T, s store.Store) []models.Product {
	ctx := context.Background()
	products := []models.Product{
		testhelpers.NewProduct("Oil Control Cleanser", models.CategoryCleanser, []string{"oily", "combination"}, []string{"acne", "oiliness"}, testhelpers.IntPtr(4)),
		testhelpers.NewProduct("Cream Cleanser", models.CategoryCleanser, []string{"dry"}, []string{"dryness"}, nil),
		testhelpers.NewProduct("BHA Serum", models.CategorySerum, []string{"oily"}, []string{"acne"}, testhelpers.IntPtr(5)),
	}
	remedy := testhelpers.NewProduct("Honey Mask", models.CategoryCleanser, []string{"dry", "sensitive"}, []string{"dryness"}, testhelpers.IntPtr(3))
	remedy.IsHomeRemedy = true
	products = append(products, remedy)

	for i := range products {
		require.NoError(t, s.CreateProduct(ctx, &products[i]))
	}
	return products
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	sort.Strings(out)
	return out
}

func TestQueryProducts(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			seedProducts(t, s)
			ctx := context.Background()

			all, err := s.QueryProducts(ctx, store.ProductFilter{})
			require.NoError(t, err)
			assert.Len(t, all, 4)

			oily, err := s.QueryProducts(ctx, store.ProductFilter{SkinTypes: []string{"oily"}})
			require.NoError(t, err)
			assert.Equal(t, []string{"BHA Serum", "Oil Control Cleanser"}, names(oily))

			cleanser := models.CategoryCleanser
			remedy := true
			remedies, err := s.QueryProducts(ctx, store.ProductFilter{Category: &cleanser, IsHomeRemedy: &remedy})
			require.NoError(t, err)
			assert.Equal(t, []string{"Honey Mask"}, names(remedies))

			none, err := s.QueryProducts(ctx, store.ProductFilter{Concerns: []string{"aging"}})
			require.NoError(t, err)
			assert.Empty(t, none)

			empty, err := s.QueryProducts(ctx, store.ProductFilter{SkinTypes: []string{}})
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestQueryProductsMonotonic(t *testing.T) {
	s := store.NewMemoryStore()
	seedProducts(t, s)
	ctx := context.Background()

	serum := models.CategorySerum
	commercial := false
	filters := []store.ProductFilter{
		{},
		{SkinTypes: []string{"oily", "dry"}},
		{SkinTypes: []string{"oily", "dry"}, Concerns: []string{"acne"}},
		{SkinTypes: []string{"oily", "dry"}, Concerns: []string{"acne"}, IsHomeRemedy: &commercial},
		{SkinTypes: []string{"oily", "dry"}, Concerns: []string{"acne"}, IsHomeRemedy: &commercial, Category: &serum},
	}

	prev, err := s.QueryProducts(ctx, filters[0])
	require.NoError(t, err)
	for _, f := range filters[1:] {
		got, err := s.QueryProducts(ctx, f)
		require.NoError(t, err)
		assert.Subset(t, names(prev), names(got))
		prev = got
	}
}

func TestIngredientLookupIgnoresCase(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			ing := testhelpers.NewIngredient("Niacinamide", models.SafetySafe)
			require.NoError(t, s.CreateIngredient(ctx, &ing))

			for _, q := range []string{"niacinamide", "NIACINAMIDE", "Niacinamide"} {
				got, err := s.GetIngredientByName(ctx, q)
				require.NoError(t, err, q)
				assert.Equal(t, ing.ID, got.ID)
				assert.Equal(t, "Niacinamide", got.Name)
			}

			_, err := s.GetIngredientByName(ctx, "niacin")
			assert.True(t, apperrors.IsNotFound(err))

			dup := testhelpers.NewIngredient("NIACINAMIDE", models.SafetyCaution)
			err = s.CreateIngredient(ctx, &dup)
			assert.True(t, apperrors.IsConflict(err))

			all, err := s.ListIngredients(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestUsers(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			u := &models.User{Username: "jane", Email: "jane@example.com", PasswordHash: "hash"}
			require.NoError(t, s.CreateUser(ctx, u))
			assert.NotEqual(t, uuid.Nil, u.ID)

			err := s.CreateUser(ctx, &models.User{Username: "jane", Email: "other@example.com", PasswordHash: "hash"})
			assert.True(t, apperrors.IsConflict(err))
			err = s.CreateUser(ctx, &models.User{Username: "other", Email: "jane@example.com", PasswordHash: "hash"})
			assert.True(t, apperrors.IsConflict(err))

			byEmail, err := s.GetUserByEmail(ctx, "jane@example.com")
			require.NoError(t, err)
			assert.Equal(t, u.ID, byEmail.ID)
			assert.Empty(t, byEmail.Allergies)

			updated, err := s.UpdateUserAllergies(ctx, u.ID, []string{"fragrance"})
			require.NoError(t, err)
			assert.Equal(t, models.JSONBStringArray{"fragrance"}, updated.Allergies)

			_, err = s.UpdateUserAllergies(ctx, uuid.New(), nil)
			assert.True(t, apperrors.IsNotFound(err))
		})
	}
}

func TestRoutineLifecycle(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			u := &models.User{Username: "sam", Email: "sam@example.com", PasswordHash: "hash"}
			require.NoError(t, s.CreateUser(ctx, u))

			a := &models.Assessment{
				UserID:        u.ID,
				SkinType:      models.SkinTypeOily,
				Concerns:      models.JSONBStringArray{"acne"},
				AgeRange:      "26-35",
				Budget:        "budget",
				TimeAvailable: models.TimeQuick,
				Lifestyle:     models.Lifestyle{"sleep": models.NumberValue(7)},
			}
			require.NoError(t, s.CreateAssessment(ctx, a))

			loaded, err := s.GetAssessment(ctx, a.ID)
			require.NoError(t, err)
			n, ok := loaded.Lifestyle["sleep"].Number()
			assert.True(t, ok)
			assert.Equal(t, 7.0, n)

			r := &models.Routine{
				UserID:         u.ID,
				AssessmentID:   a.ID,
				Name:           "My routine",
				Season:         models.SeasonSummer,
				PreferenceType: models.PreferenceProducts,
				MorningSteps: models.RoutineSteps{{
					StepNumber: 1,
					Title:      "Gentle Cleanser",
					Products:   []models.StepProduct{{ID: uuid.New(), Name: "A", Type: models.ProductTypeCommercial}},
				}},
				EveningSteps: models.RoutineSteps{},
				IsActive:     true,
			}
			require.NoError(t, s.CreateRoutine(ctx, r))

			list, err := s.ListRoutinesByUser(ctx, u.ID)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "A", list[0].MorningSteps[0].Products[0].Name)

			off, err := s.SetRoutineActive(ctx, r.ID, false)
			require.NoError(t, err)
			assert.False(t, off.IsActive)
			on, err := s.SetRoutineActive(ctx, r.ID, true)
			require.NoError(t, err)
			assert.True(t, on.IsActive)

			deleted, err := s.DeleteRoutine(ctx, r.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			_, err = s.GetRoutine(ctx, r.ID)
			assert.True(t, apperrors.IsNotFound(err))
			_, err = s.SetRoutineActive(ctx, r.ID, true)
			assert.True(t, apperrors.IsNotFound(err))
			deleted, err = s.DeleteRoutine(ctx, r.ID)
			require.NoError(t, err)
			assert.False(t, deleted)
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	products := seedProducts(t, s)

	got, err := s.GetProduct(ctx, products[0].ID)
	require.NoError(t, err)
	got.SkinTypes[0] = "mutated"

	again, err := s.GetProduct(ctx, products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "oily", again.SkinTypes[0])
}
