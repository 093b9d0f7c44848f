package player_stats_handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/dto"
	quizService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/quiz/service"
	httpError "github.com/Lotaristo/Unfair-Telegram-Bot/pkg/http"
)

// PlayerStatsHandler структура для обработчика
type PlayerStatsHandler struct {
	quizService *quizService.QuizService
}

// NewPlayerStatsHandler создает новый экземпляр обработчика
func NewPlayerStatsHandler(quizService *quizService.QuizService) *PlayerStatsHandler {
	return &PlayerStatsHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *PlayerStatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scores, err := h.quizService.Stats(ctx)
	if err != nil {
		httpError.WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get player stats: %v", err))
		return
	}

	response := dto.PlayerStatsResponse{
		TotalPlayers: len(scores),
		Players:      scores,
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		httpError.WriteError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
}
