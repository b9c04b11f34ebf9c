package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avdeenkov/linguatrack/internal/srs"
	"github.com/avdeenkov/linguatrack/internal/streak"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

const dateFormat = "2006-01-02"

func respondError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// respondServiceError maps domain errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, srs.ErrInvalidQuality):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, srs.ErrNotFound), errors.Is(err, streak.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("%s must be an integer", name))
		return 0, false
	}
	return value, true
}
