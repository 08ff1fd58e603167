package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/internal/middleware"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/sirupsen/logrus"
)

type AssessmentHandler struct {
	assessments service.IAssessmentService
	validator   middleware.TokenValidator
	log         *logrus.Logger
}

func NewAssessmentHandler(assessments service.IAssessmentService, validator middleware.TokenValidator, log *logrus.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessments: assessments,
		validator:   validator,
		log:         log,
	}
}

func (h *AssessmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	assessments := router.Group("/assessments")
	assessments.Use(middleware.AuthMiddleware(h.validator))
	{
		assessments.POST("", h.CreateAssessment)
		assessments.GET("/user/:userId", h.ListUserAssessments)
		assessments.GET("/:id", h.GetAssessment)
	}
}

func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}
	if req.UserID != nil && !sameUser(c, userID, *req.UserID) {
		return
	}

	assessment, err := h.assessments.CreateAssessment(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

func (h *AssessmentHandler) ListUserAssessments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	owner, ok := uuidParam(c, "userId")
	if !ok || !sameUser(c, userID, owner) {
		return
	}

	assessments, err := h.assessments.ListAssessmentsForUser(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, assessments)
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	assessment, err := h.assessments.GetAssessment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if assessment.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		return
	}
	c.JSON(http.StatusOK, assessment)
}
