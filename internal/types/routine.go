package types

import (
	"github.com/pageza/skinroutine/backend/internal/models"
)

// GenerateRequest carries the profile a routine is generated for
type GenerateRequest struct {
	Assessment     AssessmentProfile `json:"assessment"`
	PreferenceType string            `json:"preferenceType" binding:"omitempty,oneof=home-remedies products mixed"`
	Season         string            `json:"season" binding:"omitempty,oneof=spring summer fall winter"`
}

// AssessmentProfile is the part of an assessment the composer reads
type AssessmentProfile struct {
	SkinType string   `json:"skinType" binding:"required,oneof=oily dry combination sensitive"`
	Concerns []string `json:"concerns" binding:"required,min=1"`
}

// Adjustment is a seasonal change applied to one routine step
type Adjustment struct {
	Step   string `json:"step"`
	Change string `json:"change"`
	Reason string `json:"reason"`
}

// SeasonalAdjustment groups the adjustments for a season
type SeasonalAdjustment struct {
	Season      models.Season `json:"season"`
	Adjustments []Adjustment  `json:"adjustments"`
}

// GeneratedRoutine is the composer's output
type GeneratedRoutine struct {
	MorningSteps        []models.RoutineStep `json:"morningSteps"`
	EveningSteps        []models.RoutineStep `json:"eveningSteps"`
	SeasonalAdjustments SeasonalAdjustment   `json:"seasonalAdjustments"`
	DraftID             string               `json:"draftId,omitempty"`
}

// IngredientAnalysis is the display annotation of one ingredient for one user
type IngredientAnalysis struct {
	Ingredient       string             `json:"ingredient"`
	Cataloged        bool               `json:"cataloged"`
	IntrinsicLevel   models.SafetyLevel `json:"intrinsicLevel"`
	DisplayLevel     models.SafetyLevel `json:"displayLevel"`
	Allergen         bool               `json:"allergen"`
	MatchedRule      int                `json:"matchedRule"`
	MatchedAllergies []string           `json:"matchedAllergies"`
	Benefits         []string           `json:"benefits,omitempty"`
	Warnings         []string           `json:"warnings,omitempty"`
}

// ProductSafety is the annotation of a product's ingredient list
type ProductSafety struct {
	ProductID   string               `json:"productId"`
	ProductName string               `json:"productName"`
	Overall     models.SafetyLevel   `json:"overall"`
	Ingredients []IngredientAnalysis `json:"ingredients"`
}
