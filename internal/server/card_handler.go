package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avdeenkov/linguatrack/internal/srs"
)

type cardHandler struct {
	scheduler Scheduler
}

func newCardHandler(scheduler Scheduler) *cardHandler {
	return &cardHandler{scheduler: scheduler}
}

type cardResponse struct {
	ID           uuid.UUID `json:"id"`
	LearnerID    uuid.UUID `json:"user_id"`
	FlashcardID  uuid.UUID `json:"flashcard_id"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetition   int       `json:"repetition_count"`
	DueAt        string    `json:"due_at"`
	Suspended    bool      `json:"suspended"`
}

func toCardResponse(card *srs.Card) cardResponse {
	return cardResponse{
		ID:           card.ID,
		LearnerID:    card.LearnerID,
		FlashcardID:  card.FlashcardID,
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Repetition:   card.Repetition,
		DueAt:        card.DueAt.UTC().Format(timeFormat),
		Suspended:    card.Suspended,
	}
}

func toCardResponses(cards []srs.Card) []cardResponse {
	responses := make([]cardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, toCardResponse(&cards[i]))
	}
	return responses
}

type createCardRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	FlashcardID uuid.UUID `json:"flashcard_id" binding:"required"`
}

func (handler *cardHandler) create(c *gin.Context) {
	var request createCardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	card, err := handler.scheduler.GetOrCreateCard(c.Request.Context(), request.UserID, request.FlashcardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCardResponse(card))
}

func (handler *cardHandler) get(c *gin.Context) {
	id, ok := uuidParam(c, "card_id")
	if !ok {
		return
	}
	card, err := handler.scheduler.GetCard(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCardResponse(card))
}

func (handler *cardHandler) list(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	var filter srs.CardFilter
	if raw, exists := c.GetQuery("suspended"); exists {
		suspended, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errors.New("suspended must be a boolean"))
			return
		}
		filter.Suspended = &suspended
	}
	if raw, exists := c.GetQuery("due_only"); exists {
		dueOnly, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errors.New("due_only must be a boolean"))
			return
		}
		filter.DueOnly = dueOnly
	}

	cards, err := handler.scheduler.ListCards(c.Request.Context(), learnerID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCardResponses(cards))
}

func (handler *cardHandler) listDue(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}

	cards, err := handler.scheduler.ListDue(c.Request.Context(), learnerID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCardResponses(cards))
}

func (handler *cardHandler) statistics(c *gin.Context) {
	learnerID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	stats, err := handler.scheduler.Statistics(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (handler *cardHandler) suspend(c *gin.Context) {
	handler.setSuspended(c, true)
}

func (handler *cardHandler) unsuspend(c *gin.Context) {
	handler.setSuspended(c, false)
}

func (handler *cardHandler) setSuspended(c *gin.Context, suspended bool) {
	id, ok := uuidParam(c, "card_id")
	if !ok {
		return
	}

	var (
		card *srs.Card
		err  error
	)
	if suspended {
		card, err = handler.scheduler.Suspend(c.Request.Context(), id)
	} else {
		card, err = handler.scheduler.Unsuspend(c.Request.Context(), id)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCardResponse(card))
}

func (handler *cardHandler) delete(c *gin.Context) {
	id, ok := uuidParam(c, "card_id")
	if !ok {
		return
	}
	if err := handler.scheduler.DeleteCard(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
