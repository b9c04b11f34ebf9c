package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avdeenkov/linguatrack/internal/streak"
)

type streakHandler struct {
	streaks StreakTracker
}

func newStreakHandler(streaks StreakTracker) *streakHandler {
	return &streakHandler{streaks: streaks}
}

type streakResponse struct {
	LearnerID     uuid.UUID `json:"user_id"`
	CurrentLength int       `json:"current_length"`
	LongestLength int       `json:"longest_length"`
	LastActiveDay *string   `json:"last_active_day"`
}

func toStreakResponse(s *streak.Streak) streakResponse {
	response := streakResponse{
		LearnerID:     s.LearnerID,
		CurrentLength: s.CurrentLen,
		LongestLength: s.LongestLen,
	}
	if s.LastDay != nil {
		day := s.LastDay.Format(dateFormat)
		response.LastActiveDay = &day
	}
	return response
}

func (handler *streakHandler) get(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	s, err := handler.streaks.Get(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStreakResponse(s))
}

type checkStreakRequest struct {
	Date string `json:"date"`
}

// check advances the streak for the given day, defaulting to today when
// the body carries no date.
func (handler *streakHandler) check(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	var day time.Time
	if c.Request.ContentLength > 0 {
		var request checkStreakRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		if request.Date != "" {
			parsed, err := time.Parse(dateFormat, request.Date)
			if err != nil {
				respondError(c, http.StatusBadRequest, fmt.Errorf("date must be a YYYY-MM-DD date"))
				return
			}
			day = parsed
		}
	}

	s, err := handler.streaks.CheckAndUpdate(c.Request.Context(), learnerID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStreakResponse(s))
}

func (handler *streakHandler) recalculate(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	s, err := handler.streaks.Recalculate(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStreakResponse(s))
}

func (handler *streakHandler) status(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	status, err := handler.streaks.Status(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (handler *streakHandler) leaderboard(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}
	streaks, err := handler.streaks.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]streakResponse, 0, len(streaks))
	for i := range streaks {
		responses = append(responses, toStreakResponse(&streaks[i]))
	}
	c.JSON(http.StatusOK, responses)
}
