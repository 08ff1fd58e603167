package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/validation"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto HTTP responses. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	var (
		verr     *apperrors.ValidationError
		notFound *apperrors.NotFoundError
		conflict *apperrors.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindError reports a body that failed its binding tags field by field and
// anything else, such as malformed JSON, as a plain 400.
func bindError(c *gin.Context, log *logrus.Logger, err error) {
	if verr, ok := validation.FromError(err); ok {
		respondError(c, log, verr)
		return
	}
	badRequest(c, "invalid request body")
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
