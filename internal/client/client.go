// Package client is a small HTTP client for the progress API, used by the
// CLI against a running server.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/srs"
	"github.com/avdeenkov/linguatrack/internal/streak"
)

type Client struct {
	http *resty.Client
}

func New(cfg config.ClientConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}
	return &Client{http: httpClient}
}

type apiError struct {
	Message string `json:"error"`
}

func checkResponse(response *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if response.IsError() {
		if apiErr, ok := response.Error().(*apiError); ok && apiErr.Message != "" {
			return fmt.Errorf("api error (%d): %s", response.StatusCode(), apiErr.Message)
		}
		return fmt.Errorf("api error (%d)", response.StatusCode())
	}
	return nil
}

// Card mirrors the API's card payload.
type Card struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	FlashcardID  uuid.UUID `json:"flashcard_id"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetition   int       `json:"repetition_count"`
	DueAt        string    `json:"due_at"`
	Suspended    bool      `json:"suspended"`
}

func (client *Client) CardStatistics(ctx context.Context, learnerID uuid.UUID) (srs.CardStats, error) {
	var stats srs.CardStats
	response, err := client.http.R().
		SetContext(ctx).
		SetResult(&stats).
		SetError(&apiError{}).
		Get(fmt.Sprintf("/api/spaced-repetition/cards/user/%s/stats", learnerID))
	if err := checkResponse(response, err); err != nil {
		return srs.CardStats{}, err
	}
	return stats, nil
}

func (client *Client) ReviewStatistics(ctx context.Context, learnerID uuid.UUID) (srs.LearnerReviewStats, error) {
	var stats srs.LearnerReviewStats
	response, err := client.http.R().
		SetContext(ctx).
		SetResult(&stats).
		SetError(&apiError{}).
		Get(fmt.Sprintf("/api/spaced-repetition/reviews/user/%s/stats", learnerID))
	if err := checkResponse(response, err); err != nil {
		return srs.LearnerReviewStats{}, err
	}
	return stats, nil
}

func (client *Client) DueCards(ctx context.Context, learnerID uuid.UUID, limit int) ([]Card, error) {
	var cards []Card
	request := client.http.R().
		SetContext(ctx).
		SetResult(&cards).
		SetError(&apiError{})
	if limit > 0 {
		request.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}
	response, err := request.Get(fmt.Sprintf("/api/spaced-repetition/cards/user/%s/due", learnerID))
	if err := checkResponse(response, err); err != nil {
		return nil, err
	}
	return cards, nil
}

func (client *Client) StreakStatus(ctx context.Context, learnerID uuid.UUID) (streak.Status, error) {
	var status streak.Status
	response, err := client.http.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&apiError{}).
		Get(fmt.Sprintf("/api/streaks/user/%s/status", learnerID))
	if err := checkResponse(response, err); err != nil {
		return streak.Status{}, err
	}
	return status, nil
}

// Streak mirrors the API's streak payload.
type Streak struct {
	UserID        uuid.UUID `json:"user_id"`
	CurrentLength int       `json:"current_length"`
	LongestLength int       `json:"longest_length"`
	LastActiveDay *string   `json:"last_active_day"`
}

func (client *Client) CheckStreak(ctx context.Context, learnerID uuid.UUID, date string) (Streak, error) {
	request := client.http.R().
		SetContext(ctx).
		SetError(&apiError{})
	var result Streak
	request.SetResult(&result)
	if date != "" {
		request.SetBody(map[string]string{"date": date})
	}
	response, err := request.Post(fmt.Sprintf("/api/streaks/user/%s/check", learnerID))
	if err := checkResponse(response, err); err != nil {
		return Streak{}, err
	}
	return result, nil
}

func (client *Client) Leaderboard(ctx context.Context, limit int) ([]Streak, error) {
	var streaks []Streak
	request := client.http.R().
		SetContext(ctx).
		SetResult(&streaks).
		SetError(&apiError{})
	if limit > 0 {
		request.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}
	response, err := request.Get("/api/streaks/leaderboard")
	if err := checkResponse(response, err); err != nil {
		return nil, err
	}
	return streaks, nil
}
