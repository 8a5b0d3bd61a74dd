package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	detailNotFound        = "Not found."
	detailUnauthenticated = "Authentication credentials were not provided."
	detailInvalidToken    = "Given token not valid for any token type."
	detailForbidden       = "You do not have permission to perform this action."
	detailInvalidPage     = "Invalid page."
)

// writeError maps service errors to status codes and bodies. Field-level
// errors keep the {field: [messages]} shape.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, verr.Fields)
	case errors.As(err, &conflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{conflict.Field: []string{conflict.Message}})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
	case errors.Is(err, domain.ErrInvalidPage):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": detailInvalidPage})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{domain.NonFieldErrors: []string{"Incorrect Credentials"}})
	case errors.Is(err, domain.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detailInvalidToken})
	case errors.Is(err, domain.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": detailForbidden})
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}
}

// bindJSON decodes the request body and writes a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, domain.NewValidationError(domain.NonFieldErrors, "Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// pathID parses the :id parameter. A malformed id is reported as not found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, domain.ErrNotFound)
		return 0, false
	}
	return id, true
}
