package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlayerStore определяет интерфейс хранилища состояния игроков.
// Реализации: PlayerRepository (PostgreSQL) и MemoryStore (in-memory).
type PlayerStore interface {
	GetQuestionIndex(ctx context.Context, userID int64) (int, error)
	SetQuestionIndex(ctx context.Context, userID int64, index int) error
	ResetCurrentRun(ctx context.Context, userID int64) error
	RecordCorrectAnswer(ctx context.Context, userID int64) error
	RecordAnswerAndAdvance(ctx context.Context, userID int64, isCorrect bool, nextIndex int) error
	GetCurrentRunScore(ctx context.Context, userID int64) (int, error)
	GetBestScore(ctx context.Context, userID int64) (int, error)
	ListAll(ctx context.Context) ([]model.PlayerScore, error)
}

// PlayerRepository реализация PlayerStore с использованием базы данных PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создает новый экземпляр PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetQuestionIndex возвращает сохраненный индекс текущего вопроса игрока.
// Если записи нет, возвращает 0, не создавая запись.
func (r *PlayerRepository) GetQuestionIndex(ctx context.Context, userID int64) (int, error) {
	var index int
	err := r.db.QueryRow(ctx, "SELECT question_index FROM quiz_state WHERE user_id=$1", userID).Scan(&index)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get question index: %w", err)
	}
	return index, nil
}

// SetQuestionIndex устанавливает индекс текущего вопроса.
// Создает запись, если ее еще нет. Повторный вызов с тем же индексом ничего не меняет.
func (r *PlayerRepository) SetQuestionIndex(ctx context.Context, userID int64, index int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO quiz_state (user_id, question_index) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET question_index = EXCLUDED.question_index
	`, userID, index)
	if err != nil {
		return fmt.Errorf("failed to set question index: %w", err)
	}
	return nil
}

// ResetCurrentRun сбрасывает счет текущей игры в 0.
func (r *PlayerRepository) ResetCurrentRun(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, "UPDATE quiz_state SET current_run_score = 0 WHERE user_id=$1", userID)
	if err != nil {
		return fmt.Errorf("failed to reset current run: %w", err)
	}
	return nil
}

// RecordCorrectAnswer увеличивает счет текущей игры на 1 и пересчитывает рекорд.
// Инкремент и пересчет выполняются одним запросом, чтобы исключить потерю
// обновлений при одновременных событиях.
func (r *PlayerRepository) RecordCorrectAnswer(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO quiz_state (user_id, current_run_score, best_score) VALUES ($1, 1, 1)
		ON CONFLICT (user_id) DO UPDATE SET
			current_run_score = quiz_state.current_run_score + 1,
			best_score = GREATEST(quiz_state.best_score, quiz_state.current_run_score + 1)
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to record correct answer: %w", err)
	}
	return nil
}

// RecordAnswerAndAdvance одним запросом засчитывает ответ и переводит игрока
// на следующий вопрос. Счет и рекорд растут только для правильного ответа,
// индекс вопроса обновляется в любом случае.
func (r *PlayerRepository) RecordAnswerAndAdvance(ctx context.Context, userID int64, isCorrect bool, nextIndex int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO quiz_state (user_id, question_index, current_run_score, best_score)
		VALUES ($1, $2, CASE WHEN $3 THEN 1 ELSE 0 END, CASE WHEN $3 THEN 1 ELSE 0 END)
		ON CONFLICT (user_id) DO UPDATE SET
			question_index = EXCLUDED.question_index,
			current_run_score = quiz_state.current_run_score + CASE WHEN $3 THEN 1 ELSE 0 END,
			best_score = GREATEST(quiz_state.best_score, quiz_state.current_run_score + CASE WHEN $3 THEN 1 ELSE 0 END)
	`, userID, nextIndex, isCorrect)
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}
	return nil
}

// GetCurrentRunScore возвращает счет текущей игры, 0 если записи нет.
func (r *PlayerRepository) GetCurrentRunScore(ctx context.Context, userID int64) (int, error) {
	var score int
	err := r.db.QueryRow(ctx, "SELECT current_run_score FROM quiz_state WHERE user_id=$1", userID).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get current run score: %w", err)
	}
	return score, nil
}

// GetBestScore возвращает лучший счет игрока, 0 если записи нет.
func (r *PlayerRepository) GetBestScore(ctx context.Context, userID int64) (int, error) {
	var score int
	err := r.db.QueryRow(ctx, "SELECT best_score FROM quiz_state WHERE user_id=$1", userID).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get best score: %w", err)
	}
	return score, nil
}

// ListAll возвращает снимок статистики по всем игрокам, отсортированный по user_id.
func (r *PlayerRepository) ListAll(ctx context.Context) ([]model.PlayerScore, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id, best_score FROM quiz_state ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query player scores: %w", err)
	}
	defer rows.Close()

	var scores []model.PlayerScore
	for rows.Next() {
		var s model.PlayerScore
		if err := rows.Scan(&s.UserID, &s.BestScore); err != nil {
			return nil, fmt.Errorf("failed to scan player score: %w", err)
		}
		scores = append(scores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return scores, nil
}
