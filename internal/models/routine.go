package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductType distinguishes home remedies from commercial products inside a step
type ProductType string

const (
	ProductTypeHomeRemedy ProductType = "home-remedy"
	ProductTypeCommercial ProductType = "commercial"
)

// StepProduct is the projection of a catalog product shown inside a routine step
type StepProduct struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Type         ProductType `json:"type" binding:"oneof=home-remedy commercial"`
	Instructions *string     `json:"instructions,omitempty"`
}

// RoutineStep is one ordered step of a morning or evening routine
type RoutineStep struct {
	StepNumber  int           `json:"stepNumber" binding:"min=1"`
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Products    []StepProduct `json:"products" binding:"dive"`
	Frequency   *string       `json:"frequency,omitempty"`
}

// Routine is a saved routine. Only IsActive changes after creation.
type Routine struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"userId"`
	AssessmentID   uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"assessmentId"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Season         Season         `gorm:"size:20;not null" json:"season"`
	PreferenceType PreferenceType `gorm:"size:20;not null" json:"preferenceType"`
	MorningSteps   RoutineSteps   `gorm:"type:jsonb;not null" json:"morningSteps"`
	EveningSteps   RoutineSteps   `gorm:"type:jsonb;not null" json:"eveningSteps"`
	IsActive       bool           `gorm:"not null" json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (Routine) TableName() string {
	return "routines"
}

// Clone returns a deep copy of r
func (r Routine) Clone() Routine {
	out := r
	out.MorningSteps = r.MorningSteps.Clone()
	out.EveningSteps = r.EveningSteps.Clone()
	return out
}
