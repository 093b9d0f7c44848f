package dto

import "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"

// PlayerStatsResponse структура для отчета по рекордам игроков
type PlayerStatsResponse struct {
	TotalPlayers int                 `json:"total_players"`
	Players      []model.PlayerScore `json:"players"`
}
