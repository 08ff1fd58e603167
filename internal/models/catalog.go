package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product categories used by the routine templates
const (
	CategoryCleanser         = "Cleanser"
	CategorySerum            = "Serum"
	CategoryMoisturizer      = "Moisturizer"
	CategorySunscreen        = "Sunscreen"
	CategoryNightMoisturizer = "Night-Moisturizer"
)

// SafetyLevel is an ingredient's risk tier
type SafetyLevel string

const (
	SafetySafe    SafetyLevel = "safe"
	SafetyCaution SafetyLevel = "caution"
	SafetyWarning SafetyLevel = "warning"
)

// Valid reports whether l is a known safety tier
func (l SafetyLevel) Valid() bool {
	switch l {
	case SafetySafe, SafetyCaution, SafetyWarning:
		return true
	}
	return false
}

// Product is a catalog entry, either a commercial product or a home remedy.
// For a home remedy Price is the cost of its ingredients.
type Product struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Brand        string           `gorm:"size:255;not null" json:"brand"`
	Category     string           `gorm:"size:50;not null;index" json:"category"`
	SkinTypes    JSONBStringArray `gorm:"type:jsonb;not null" json:"skinTypes"`
	Concerns     JSONBStringArray `gorm:"type:jsonb;not null" json:"concerns"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null" json:"ingredients"`
	Price        *int             `json:"price"`
	Rating       *int             `json:"rating"`
	IsHomeRemedy bool             `gorm:"not null;index" json:"isHomeRemedy"`
	Instructions *string          `gorm:"type:text" json:"instructions"`
	Warnings     JSONBStringArray `gorm:"type:jsonb;not null" json:"warnings"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// Clone returns a deep copy of p
func (p Product) Clone() Product {
	out := p
	out.SkinTypes = p.SkinTypes.Clone()
	out.Concerns = p.Concerns.Clone()
	out.Ingredients = p.Ingredients.Clone()
	out.Warnings = p.Warnings.Clone()
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	if p.Rating != nil {
		v := *p.Rating
		out.Rating = &v
	}
	if p.Instructions != nil {
		v := *p.Instructions
		out.Instructions = &v
	}
	return out
}

// Ingredient is a catalog ingredient. Names are unique ignoring case;
// NameKey holds the normalized form the unique index is built on.
type Ingredient struct {
	ID              uuid.UUID        `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	NameKey         string           `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Description     *string          `gorm:"type:text" json:"description"`
	Benefits        JSONBStringArray `gorm:"type:jsonb;not null" json:"benefits"`
	Warnings        JSONBStringArray `gorm:"type:jsonb;not null" json:"warnings"`
	SafetyLevel     SafetyLevel      `gorm:"size:20;not null" json:"safetyLevel"`
	CommonAllergens JSONBStringArray `gorm:"type:jsonb;not null" json:"commonAllergens"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientKey normalizes an ingredient name for lookups
func IngredientKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Clone returns a deep copy of i
func (i Ingredient) Clone() Ingredient {
	out := i
	out.Benefits = i.Benefits.Clone()
	out.Warnings = i.Warnings.Clone()
	out.CommonAllergens = i.CommonAllergens.Clone()
	if i.Description != nil {
		v := *i.Description
		out.Description = &v
	}
	return out
}
