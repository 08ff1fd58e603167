package types

import (
	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/models"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username        string   `json:"username" binding:"required,max=100"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	ConfirmPassword string   `json:"confirmPassword" binding:"required,eqfield=Password"`
	Allergies       []string `json:"allergies"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateAllergiesRequest replaces the caller's allergy list
type UpdateAllergiesRequest struct {
	Allergies []string `json:"allergies"`
}

// CreateAssessmentRequest represents a completed questionnaire. UserID is
// optional and must match the authenticated user when given.
type CreateAssessmentRequest struct {
	UserID        *uuid.UUID       `json:"userId,omitempty"`
	SkinType      string           `json:"skinType" binding:"required,oneof=oily dry combination sensitive"`
	Concerns      []string         `json:"concerns" binding:"required,min=1"`
	AgeRange      string           `json:"ageRange" binding:"required"`
	Budget        string           `json:"budget" binding:"required"`
	TimeAvailable string           `json:"timeAvailable" binding:"required,oneof=quick moderate extensive"`
	Lifestyle     models.Lifestyle `json:"lifestyle"`
}

// CreateRoutineRequest saves a routine either from inline steps or from a
// previously generated draft. Season and PreferenceType may be left empty
// when DraftID is set.
type CreateRoutineRequest struct {
	UserID         *uuid.UUID           `json:"userId,omitempty"`
	AssessmentID   uuid.UUID            `json:"assessmentId" binding:"required"`
	Name           string               `json:"name" binding:"required,max=255"`
	Season         string               `json:"season" binding:"omitempty,oneof=spring summer fall winter"`
	PreferenceType string               `json:"preferenceType" binding:"omitempty,oneof=home-remedies products mixed"`
	MorningSteps   []models.RoutineStep `json:"morningSteps" binding:"dive"`
	EveningSteps   []models.RoutineStep `json:"eveningSteps" binding:"dive"`
	IsActive       *bool                `json:"isActive,omitempty"`
	DraftID        string               `json:"draftId,omitempty"`
}

// UpdateRoutineRequest toggles a routine's active flag
type UpdateRoutineRequest struct {
	IsActive *bool `json:"isActive"`
}
