package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avdeenkov/linguatrack/internal/srs"
)

type reviewHandler struct {
	scheduler Scheduler
}

func newReviewHandler(scheduler Scheduler) *reviewHandler {
	return &reviewHandler{scheduler: scheduler}
}

type submitReviewRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	FlashcardID uuid.UUID `json:"flashcard_id" binding:"required"`
	Quality     *int      `json:"quality" binding:"required"`
}

type reviewResponse struct {
	ID               uuid.UUID `json:"id"`
	LearnerID        uuid.UUID `json:"user_id"`
	FlashcardID      uuid.UUID `json:"flashcard_id"`
	Quality          int       `json:"quality"`
	PrevIntervalDays int       `json:"prev_interval_days"`
	NewIntervalDays  int       `json:"new_interval_days"`
	NewEaseFactor    float64   `json:"new_ease_factor"`
	ReviewedAt       string    `json:"reviewed_at"`
}

func toReviewResponse(review *srs.Review) reviewResponse {
	return reviewResponse{
		ID:               review.ID,
		LearnerID:        review.LearnerID,
		FlashcardID:      review.FlashcardID,
		Quality:          review.Quality,
		PrevIntervalDays: review.PrevIntervalDays,
		NewIntervalDays:  review.NewIntervalDays,
		NewEaseFactor:    review.NewEaseFactor,
		ReviewedAt:       review.ReviewedAt.UTC().Format(timeFormat),
	}
}

func toReviewResponses(reviews []srs.Review) []reviewResponse {
	responses := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}
	return responses
}

type submitReviewResponse struct {
	Review reviewResponse `json:"review"`
	Card   cardResponse   `json:"card"`
}

func (handler *reviewHandler) submit(c *gin.Context) {
	var request submitReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	card, review, err := handler.scheduler.Review(c.Request.Context(), request.UserID, request.FlashcardID, *request.Quality)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitReviewResponse{
		Review: toReviewResponse(review),
		Card:   toCardResponse(card),
	})
}

func (handler *reviewHandler) list(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	var window srs.ReviewWindow
	for name, target := range map[string]**time.Time{"from": &window.From, "to": &window.To} {
		raw, exists := c.GetQuery(name)
		if !exists {
			continue
		}
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("%s must be a YYYY-MM-DD date", name))
			return
		}
		*target = &parsed
	}
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}
	window.Limit = limit
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}
	window.Offset = offset

	reviews, err := handler.scheduler.ListReviews(c.Request.Context(), learnerID, window)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

func (handler *reviewHandler) flashcardHistory(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	flashcardID, ok := uuidParam(c, "flashcard_id")
	if !ok {
		return
	}

	reviews, err := handler.scheduler.FlashcardHistory(c.Request.Context(), learnerID, flashcardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

func (handler *reviewHandler) todayStats(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	stats, err := handler.scheduler.ReviewStatsToday(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (handler *reviewHandler) overallStats(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	stats, err := handler.scheduler.ReviewStatsOverall(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// calendar returns a date -> review-count map for one month.
func (handler *reviewHandler) calendar(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year", 0)
	if !ok {
		return
	}
	month, ok := intQuery(c, "month", 0)
	if !ok {
		return
	}
	if year < 1 || month < 1 || month > 12 {
		respondError(c, http.StatusBadRequest, fmt.Errorf("year and month are required"))
		return
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	days, err := handler.scheduler.Calendar(c.Request.Context(), learnerID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	calendar := make(map[string]int, len(days))
	for _, day := range days {
		calendar[day.Day.Format(dateFormat)] = day.Count
	}
	c.JSON(http.StatusOK, calendar)
}

func (handler *reviewHandler) delete(c *gin.Context) {
	id, ok := uuidParam(c, "review_id")
	if !ok {
		return
	}
	if err := handler.scheduler.DeleteReview(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
