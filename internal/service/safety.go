package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/pageza/skinroutine/backend/internal/types"
)

// Rules reported in IngredientAnalysis.MatchedRule
const (
	RuleDirectAllergy  = 1
	RuleCommonAllergen = 2
	RuleIntrinsic      = 3
)

// Substrings that mark an uncataloged ingredient as needing caution
var (
	knownIrritants = []string{"fragrance", "alcohol denat", "essential oils", "citrus extracts"}
	strongActives  = []string{"retinol", "tretinoin", "glycolic acid", "lactic acid"}
)

// SafetyClassifier computes the safety tier of ingredients for a user
type SafetyClassifier struct {
	catalog store.CatalogStore
	metrics *metrics.Metrics
}

func NewSafetyClassifier(catalog store.CatalogStore, m *metrics.Metrics) *SafetyClassifier {
	return &SafetyClassifier{catalog: catalog, metrics: m}
}

// Classify returns the tier of the named ingredient for a user with the given allergies
func (c *SafetyClassifier) Classify(ctx context.Context, ingredient string, allergies []string) (models.SafetyLevel, error) {
	analysis, err := c.Annotate(ctx, ingredient, allergies)
	if err != nil {
		return "", err
	}
	return analysis.DisplayLevel, nil
}

// Annotate classifies one ingredient and reports which rule decided the result
func (c *SafetyClassifier) Annotate(ctx context.Context, ingredient string, allergies []string) (*types.IngredientAnalysis, error) {
	if strings.TrimSpace(ingredient) == "" {
		return nil, apperrors.NewValidationError("ingredient", "is required")
	}

	ing, err := c.catalog.GetIngredientByName(ctx, ingredient)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return nil, err
		}
		ing = nil
	}

	analysis := ClassifyIngredient(ingredient, ing, allergies)
	c.metrics.Classified(string(analysis.DisplayLevel))
	return &analysis, nil
}

// AnalyzeIngredients annotates every catalog ingredient, sorted by name
func (c *SafetyClassifier) AnalyzeIngredients(ctx context.Context, allergies []string) ([]types.IngredientAnalysis, error) {
	ingredients, err := NewCatalogService(c.catalog).ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]types.IngredientAnalysis, 0, len(ingredients))
	for i := range ingredients {
		analysis := ClassifyIngredient(ingredients[i].Name, &ingredients[i], allergies)
		c.metrics.Classified(string(analysis.DisplayLevel))
		out = append(out, analysis)
	}
	return out, nil
}

// AnalyzeProduct annotates a product's ingredient list. Overall is the most
// severe display level among its ingredients.
func (c *SafetyClassifier) AnalyzeProduct(ctx context.Context, productID uuid.UUID, allergies []string) (*types.ProductSafety, error) {
	product, err := c.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	result := &types.ProductSafety{
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Overall:     models.SafetySafe,
		Ingredients: make([]types.IngredientAnalysis, 0, len(product.Ingredients)),
	}
	for _, name := range product.Ingredients {
		analysis, err := c.Annotate(ctx, name, allergies)
		if err != nil {
			return nil, err
		}
		if severity(analysis.DisplayLevel) > severity(result.Overall) {
			result.Overall = analysis.DisplayLevel
		}
		result.Ingredients = append(result.Ingredients, *analysis)
	}
	return result, nil
}

// ClassifyIngredient applies the classification rules in order, first match wins:
//  1. the user lists the ingredient itself as an allergy
//  2. a user allergy and one of the ingredient's common allergens contain one another
//  3. the ingredient's own safety level
//
// ing is nil for ingredients missing from the catalog.
func ClassifyIngredient(name string, ing *models.Ingredient, allergies []string) types.IngredientAnalysis {
	analysis := types.IngredientAnalysis{
		Ingredient:       name,
		Cataloged:        ing != nil,
		IntrinsicLevel:   intrinsicLevel(name, ing),
		MatchedAllergies: []string{},
	}
	if ing != nil {
		analysis.Ingredient = ing.Name
		analysis.Benefits = ing.Benefits.Clone()
		analysis.Warnings = ing.Warnings.Clone()
	}

	key := models.IngredientKey(name)
	for _, allergy := range allergies {
		if a := models.IngredientKey(allergy); a != "" && a == key {
			analysis.MatchedAllergies = append(analysis.MatchedAllergies, allergy)
		}
	}
	if len(analysis.MatchedAllergies) > 0 {
		analysis.DisplayLevel = models.SafetyWarning
		analysis.Allergen = true
		analysis.MatchedRule = RuleDirectAllergy
		return analysis
	}

	if ing != nil {
		for _, allergy := range allergies {
			if matchesCommonAllergen(allergy, ing.CommonAllergens) {
				analysis.MatchedAllergies = append(analysis.MatchedAllergies, allergy)
			}
		}
		if len(analysis.MatchedAllergies) > 0 {
			analysis.DisplayLevel = models.SafetyWarning
			analysis.Allergen = true
			analysis.MatchedRule = RuleCommonAllergen
			return analysis
		}
	}

	analysis.DisplayLevel = analysis.IntrinsicLevel
	analysis.MatchedRule = RuleIntrinsic
	return analysis
}

func matchesCommonAllergen(allergy string, common []string) bool {
	a := models.IngredientKey(allergy)
	if a == "" {
		return false
	}
	for _, c := range common {
		ck := models.IngredientKey(c)
		if ck == "" {
			continue
		}
		if strings.Contains(ck, a) || strings.Contains(a, ck) {
			return true
		}
	}
	return false
}

func intrinsicLevel(name string, ing *models.Ingredient) models.SafetyLevel {
	if ing != nil && ing.SafetyLevel.Valid() {
		return ing.SafetyLevel
	}
	lower := models.IngredientKey(name)
	for _, s := range knownIrritants {
		if strings.Contains(lower, s) {
			return models.SafetyCaution
		}
	}
	for _, s := range strongActives {
		if strings.Contains(lower, s) {
			return models.SafetyCaution
		}
	}
	return models.SafetySafe
}

func severity(l models.SafetyLevel) int {
	switch l {
	case models.SafetyWarning:
		return 2
	case models.SafetyCaution:
		return 1
	default:
		return 0
	}
}
