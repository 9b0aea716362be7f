package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/itchan-dev/agora/backend/internal/service"
	"github.com/itchan-dev/agora/shared/config"
	"github.com/itchan-dev/agora/shared/logger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	feed    service.FeedService
	thread  service.ThreadService
	comment service.CommentService
	like    service.LikeService
	health  HealthChecker
	cfg     *config.Config
}

func New(feed service.FeedService, thread service.ThreadService, comment service.CommentService, like service.LikeService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		feed:    feed,
		thread:  thread,
		comment: comment,
		like:    like,
		health:  health,
		cfg:     cfg,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONWithStatus(w, http.StatusOK, v)
}

func writeJSONWithStatus(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
