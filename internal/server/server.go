//go:generate mockgen -source=server.go -destination=../mocks/mock_server.go -package=mocks -mock_names StreakTracker=MockStreakTrackerAPI

// Package server exposes the scheduler and streak tracker over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/srs"
	"github.com/avdeenkov/linguatrack/internal/streak"
)

// Scheduler is the card/review surface the HTTP handlers need.
type Scheduler interface {
	GetOrCreateCard(ctx context.Context, learnerID, flashcardID uuid.UUID) (*srs.Card, error)
	GetCard(ctx context.Context, id uuid.UUID) (*srs.Card, error)
	ListCards(ctx context.Context, learnerID uuid.UUID, filter srs.CardFilter) ([]srs.Card, error)
	ListDue(ctx context.Context, learnerID uuid.UUID, limit int) ([]srs.Card, error)
	Review(ctx context.Context, learnerID, flashcardID uuid.UUID, quality int) (*srs.Card, *srs.Review, error)
	Suspend(ctx context.Context, id uuid.UUID) (*srs.Card, error)
	Unsuspend(ctx context.Context, id uuid.UUID) (*srs.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context, learnerID uuid.UUID) (srs.CardStats, error)
	ListReviews(ctx context.Context, learnerID uuid.UUID, window srs.ReviewWindow) ([]srs.Review, error)
	FlashcardHistory(ctx context.Context, learnerID, flashcardID uuid.UUID) ([]srs.Review, error)
	ReviewStatsToday(ctx context.Context, learnerID uuid.UUID) (srs.ReviewStats, error)
	ReviewStatsOverall(ctx context.Context, learnerID uuid.UUID) (srs.LearnerReviewStats, error)
	Calendar(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]srs.DayCount, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

// StreakTracker is the streak surface the HTTP handlers need.
type StreakTracker interface {
	Get(ctx context.Context, learnerID uuid.UUID) (*streak.Streak, error)
	CheckAndUpdate(ctx context.Context, learnerID uuid.UUID, activityDay time.Time) (*streak.Streak, error)
	Recalculate(ctx context.Context, learnerID uuid.UUID) (*streak.Streak, error)
	Status(ctx context.Context, learnerID uuid.UUID) (streak.Status, error)
	Leaderboard(ctx context.Context, limit int) ([]streak.Streak, error)
}

type Server struct {
	config  config.ServerConfig
	logger  *zap.Logger
	engine  *gin.Engine
	httpSrv *http.Server
}

func New(cfg config.ServerConfig, logger *zap.Logger, scheduler Scheduler, streaks StreakTracker) *Server {
	engine := gin.New()
	engine.Use(requestLogger(logger), gin.Recovery(), corsMiddleware(cfg.CORS))

	server := &Server{
		config: cfg,
		logger: logger,
		engine: engine,
	}
	registerRoutes(engine, scheduler, streaks)
	return server
}

func registerRoutes(engine *gin.Engine, scheduler Scheduler, streaks StreakTracker) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cards := newCardHandler(scheduler)
	reviews := newReviewHandler(scheduler)
	sr := engine.Group("/api/spaced-repetition")
	{
		sr.POST("/reviews", reviews.submit)
		sr.GET("/reviews/user/:user_id", reviews.list)
		sr.GET("/reviews/user/:user_id/flashcard/:flashcard_id", reviews.flashcardHistory)
		sr.GET("/reviews/user/:user_id/today", reviews.todayStats)
		sr.GET("/reviews/user/:user_id/stats", reviews.overallStats)
		sr.GET("/reviews/user/:user_id/calendar", reviews.calendar)
		sr.DELETE("/reviews/:review_id", reviews.delete)

		sr.POST("/cards", cards.create)
		sr.GET("/cards/user/:user_id", cards.list)
		sr.GET("/cards/user/:user_id/due", cards.listDue)
		sr.GET("/cards/user/:user_id/stats", cards.statistics)
		sr.GET("/cards/:card_id", cards.get)
		sr.PATCH("/cards/:card_id/suspend", cards.suspend)
		sr.PATCH("/cards/:card_id/unsuspend", cards.unsuspend)
		sr.DELETE("/cards/:card_id", cards.delete)
	}

	streakHandler := newStreakHandler(streaks)
	st := engine.Group("/api/streaks")
	{
		st.GET("/leaderboard", streakHandler.leaderboard)
		st.GET("/user/:user_id", streakHandler.get)
		st.POST("/user/:user_id/check", streakHandler.check)
		st.POST("/user/:user_id/recalculate", streakHandler.recalculate)
		st.GET("/user/:user_id/status", streakHandler.status)
	}
}

// Handler exposes the router for tests.
func (server *Server) Handler() http.Handler {
	return server.engine
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (server *Server) Start() error {
	server.httpSrv = &http.Server{
		Addr:    fmt.Sprintf(":%d", server.config.Port),
		Handler: server.engine,
	}
	server.logger.Info("http server listening", zap.String("addr", server.httpSrv.Addr))
	if err := server.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

func (server *Server) Shutdown(ctx context.Context) error {
	if server.httpSrv == nil {
		return nil
	}
	return server.httpSrv.Shutdown(ctx)
}
