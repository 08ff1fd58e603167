package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/middleware"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/sirupsen/logrus"
)

type RoutineHandler struct {
	routines  service.IRoutineService
	validator middleware.TokenValidator
	limiter   *middleware.RateLimiter
	log       *logrus.Logger
}

// NewRoutineHandler creates a RoutineHandler. A nil limiter leaves generation unlimited.
func NewRoutineHandler(routines service.IRoutineService, validator middleware.TokenValidator, limiter *middleware.RateLimiter, log *logrus.Logger) *RoutineHandler {
	return &RoutineHandler{
		routines:  routines,
		validator: validator,
		limiter:   limiter,
		log:       log,
	}
}

func (h *RoutineHandler) RegisterRoutes(router *gin.RouterGroup) {
	routines := router.Group("/routines")
	routines.Use(middleware.AuthMiddleware(h.validator))
	{
		if h.limiter != nil {
			routines.POST("/generate", h.limiter.RateLimitMiddleware(), h.Generate)
		} else {
			routines.POST("/generate", h.Generate)
		}
		routines.POST("", h.CreateRoutine)
		routines.GET("/user/:userId", h.ListUserRoutines)
		routines.GET("/:id", h.GetRoutine)
		routines.PATCH("/:id", h.UpdateRoutine)
		routines.DELETE("/:id", h.DeleteRoutine)
	}
}

func (h *RoutineHandler) Generate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	routine, err := h.routines.Generate(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}
	if req.UserID != nil && !sameUser(c, userID, *req.UserID) {
		return
	}

	routine, err := h.routines.CreateRoutine(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (h *RoutineHandler) ListUserRoutines(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	owner, ok := uuidParam(c, "userId")
	if !ok || !sameUser(c, userID, owner) {
		return
	}

	routines, err := h.routines.ListRoutinesForUser(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, routines)
}

// ownedRoutine loads a routine, answering 404 for routines of other users
func (h *RoutineHandler) ownedRoutine(c *gin.Context) (*models.Routine, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return nil, false
	}

	routine, err := h.routines.GetRoutine(c.Request.Context(), id)
	if err == nil && routine.UserID != userID {
		err = apperrors.NewNotFound("routine", id.String())
	}
	if err != nil {
		respondError(c, h.log, err)
		return nil, false
	}
	return routine, true
}

func (h *RoutineHandler) GetRoutine(c *gin.Context) {
	routine, ok := h.ownedRoutine(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (h *RoutineHandler) UpdateRoutine(c *gin.Context) {
	var req types.UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}
	if req.IsActive == nil {
		respondError(c, h.log, apperrors.NewValidationError("isActive", "is required"))
		return
	}

	routine, ok := h.ownedRoutine(c)
	if !ok {
		return
	}

	updated, err := h.routines.SetRoutineActive(c.Request.Context(), routine.ID, *req.IsActive)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	routine, ok := h.ownedRoutine(c)
	if !ok {
		return
	}

	deleted, err := h.routines.DeleteRoutine(c.Request.Context(), routine.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !deleted {
		respondError(c, h.log, apperrors.NewNotFound("routine", routine.ID.String()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Routine deleted successfully", "id": routine.ID})
}
