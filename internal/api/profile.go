package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/internal/middleware"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	profileService service.IProfileService
	validator      middleware.TokenValidator
	log            *logrus.Logger
}

func NewProfileHandler(profileService service.IProfileService, validator middleware.TokenValidator, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator,
		log:            log,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.validator))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("/allergies", h.UpdateAllergies)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) UpdateAllergies(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.UpdateAllergiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	user, err := h.profileService.UpdateAllergies(c.Request.Context(), userID, req.Allergies)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
