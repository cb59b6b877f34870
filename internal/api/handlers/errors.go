package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "project-intake-backend/internal/errors"
	"project-intake-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes. Anything unrecognised is
// logged and reported as an opaque 500.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		emptyErr      *apperrors.EmptyInputError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &emptyErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsSubmissionConflict(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsNoMentorAvailable(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
