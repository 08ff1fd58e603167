package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/middleware"
	"github.com/pageza/skinroutine/backend/internal/models"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the services the HTTP API is built on. Limiter may be nil,
// in which case routine generation is not rate limited.
type Dependencies struct {
	Auth        service.IAuthService
	Profile     service.IProfileService
	Catalog     service.ICatalogService
	Safety      service.ISafetyService
	Assessments service.IAssessmentService
	Routines    service.IRoutineService
	Store       Pinger
	Limiter     *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Log         *logrus.Logger
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Skin routine API is running",
		"version": "v1.0.0",
	})
}

// ReadinessCheck reports 503 until the store answers a ping
func ReadinessCheck(store Pinger, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.WithError(err).Warn("Readiness check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)
	router.GET("/ready", ReadinessCheck(deps.Store, deps.Log))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	v1.GET("/options", GetOptions)
	v1.GET("/seasons/current", GetCurrentSeason)

	NewAuthHandler(deps.Auth, deps.Log).RegisterRoutes(v1)
	NewProfileHandler(deps.Profile, deps.Auth, deps.Log).RegisterRoutes(v1)
	NewCatalogHandler(deps.Catalog, deps.Safety, deps.Profile, deps.Auth, deps.Log).RegisterRoutes(v1)
	NewAssessmentHandler(deps.Assessments, deps.Auth, deps.Log).RegisterRoutes(v1)
	NewRoutineHandler(deps.Routines, deps.Auth, deps.Limiter, deps.Log).RegisterRoutes(v1)

	if deps.Limiter != nil {
		RegisterRateLimitRoutes(v1, deps.Auth, deps.Limiter, deps.Log)
	}
}

// GetOptions returns the questionnaire option lists
func GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultOptions())
}

// GetCurrentSeason returns the season for today's date
func GetCurrentSeason(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"season": models.CurrentSeason(time.Now())})
}

// RegisterRateLimitRoutes registers the endpoint for checking the generate quota
func RegisterRateLimitRoutes(router *gin.RouterGroup, validator middleware.TokenValidator, limiter *middleware.RateLimiter, log *logrus.Logger) {
	rateLimits := router.Group("/rate-limits")
	rateLimits.Use(middleware.AuthMiddleware(validator))

	rateLimits.GET("/generate", func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), userID.String())
		if err != nil {
			log.WithError(err).Warn("Failed to check rate limit")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":     limiter.Limit(),
			"remaining": remaining,
			"resetTime": resetTime.Unix(),
			"window":    limiter.Window().String(),
		})
	})
}

// currentUser writes a 401 when the request carries no user
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam parses a path parameter, writing a 400 when it is malformed
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// sameUser writes a 403 when the owner named in a request is not the caller
func sameUser(c *gin.Context, caller, owner uuid.UUID) bool {
	if caller != owner {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	return true
}
