package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// seededStore returns a memory store holding a small catalog
func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()

	products := []models.Product{
		testhelpers.NewProduct("CeraVe Foaming Facial Cleanser", models.CategoryCleanser,
			[]string{"oily", "combination"}, []string{"acne", "oiliness"}, testhelpers.IntPtr(4)),
		testhelpers.NewProduct("The Ordinary Niacinamide 10% + Zinc 1%", models.CategorySerum,
			[]string{"oily", "combination"}, []string{"acne", "large-pores", "oiliness"}, testhelpers.IntPtr(4)),
		testhelpers.NewProduct("Hydrating Cream Cleanser", models.CategoryCleanser,
			[]string{"dry", "sensitive"}, []string{"dryness"}, testhelpers.IntPtr(5)),
		testhelpers.NewProduct("Hyaluronic Acid 2% + B5", models.CategorySerum,
			[]string{"dry", "oily", "combination", "sensitive"}, []string{"dryness", "fine-lines"}, nil),
		testhelpers.NewProduct("Salicylic Acid 2% Solution", models.CategorySerum,
			[]string{"oily"}, []string{"acne"}, testhelpers.IntPtr(5)),
		testhelpers.NewProduct("Oil-Free Gel Moisturizer", models.CategoryMoisturizer,
			[]string{"oily"}, []string{"acne", "oiliness"}, testhelpers.IntPtr(5)),
	}
	honey := testhelpers.NewProduct("Honey and Oatmeal Cleanser", models.CategoryCleanser,
		[]string{"dry", "sensitive", "combination"}, []string{"dryness", "sensitivity"}, testhelpers.IntPtr(4))
	honey.IsHomeRemedy = true
	honey.Instructions = testhelpers.StrPtr("Mix 1 tbsp honey with 1 tsp ground oats, massage gently and rinse")
	products = append(products, honey)

	for i := range products {
		require.NoError(t, s.CreateProduct(ctx, &products[i]))
	}

	ingredients := []models.Ingredient{
		testhelpers.NewIngredient("Niacinamide", models.SafetySafe),
		testhelpers.NewIngredient("Retinol", models.SafetyCaution),
		testhelpers.NewIngredient("Salicylic Acid", models.SafetyCaution, "aspirin", "salicylates"),
		testhelpers.NewIngredient("Hyaluronic Acid", models.SafetySafe),
		testhelpers.NewIngredient("Fragrance", models.SafetyWarning, "fragrance mix", "linalool"),
	}
	for i := range ingredients {
		require.NoError(t, s.CreateIngredient(ctx, &ingredients[i]))
	}
	return s
}

// memoryDrafts is a DraftStore backed by a map
type memoryDrafts struct {
	mu      sync.Mutex
	drafts  map[string]service.RoutineDraft
	saveErr error
}

func newMemoryDrafts() *memoryDrafts {
	return &memoryDrafts{drafts: make(map[string]service.RoutineDraft)}
}

func (m *memoryDrafts) SaveDraft(ctx context.Context, draft *service.RoutineDraft) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	draft.ID = "draft-" + draft.UserID.String()
	m.drafts[draft.ID] = *draft
	return nil
}

func (m *memoryDrafts) GetDraft(ctx context.Context, id string) (*service.RoutineDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return nil, apperrors.NewNotFound("draft", id)
	}
	return &d, nil
}

func (m *memoryDrafts) DeleteDraft(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}
