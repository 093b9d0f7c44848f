package service

import (
	"context"
	"fmt"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/players/repository"
)

// PlayerService для работы с состоянием игроков
type PlayerService struct {
	playerStore repository.PlayerStore
}

// NewPlayerService создает новый экземпляр PlayerService
func NewPlayerService(playerStore repository.PlayerStore) *PlayerService {
	return &PlayerService{playerStore: playerStore}
}

// GetQuestionIndex получает индекс текущего вопроса игрока (0, если записи нет)
func (s *PlayerService) GetQuestionIndex(ctx context.Context, userID int64) (int, error) {
	index, err := s.playerStore.GetQuestionIndex(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get question index: %w", err)
	}
	return index, nil
}

// SetQuestionIndex сохраняет индекс текущего вопроса игрока
func (s *PlayerService) SetQuestionIndex(ctx context.Context, userID int64, index int) error {
	if err := s.playerStore.SetQuestionIndex(ctx, userID, index); err != nil {
		return fmt.Errorf("failed to set question index: %w", err)
	}
	return nil
}

// ResetCurrentRun сбрасывает счет текущей игры
func (s *PlayerService) ResetCurrentRun(ctx context.Context, userID int64) error {
	if err := s.playerStore.ResetCurrentRun(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset current run: %w", err)
	}
	return nil
}

// RecordCorrectAnswer засчитывает правильный ответ и обновляет рекорд
func (s *PlayerService) RecordCorrectAnswer(ctx context.Context, userID int64) error {
	if err := s.playerStore.RecordCorrectAnswer(ctx, userID); err != nil {
		return fmt.Errorf("failed to record correct answer: %w", err)
	}
	return nil
}

// RecordAnswerAndAdvance атомарно засчитывает ответ и сдвигает игрока на следующий вопрос
func (s *PlayerService) RecordAnswerAndAdvance(ctx context.Context, userID int64, isCorrect bool, nextIndex int) error {
	if err := s.playerStore.RecordAnswerAndAdvance(ctx, userID, isCorrect, nextIndex); err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}
	return nil
}

// GetCurrentRunScore получает счет текущей игры игрока
func (s *PlayerService) GetCurrentRunScore(ctx context.Context, userID int64) (int, error) {
	score, err := s.playerStore.GetCurrentRunScore(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get current run score: %w", err)
	}
	return score, nil
}

// GetBestScore получает лучший счет игрока
func (s *PlayerService) GetBestScore(ctx context.Context, userID int64) (int, error) {
	score, err := s.playerStore.GetBestScore(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get best score: %w", err)
	}
	return score, nil
}

// ListAll получает статистику по всем игрокам
func (s *PlayerService) ListAll(ctx context.Context) ([]model.PlayerScore, error) {
	scores, err := s.playerStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list player scores: %w", err)
	}
	return scores, nil
}
