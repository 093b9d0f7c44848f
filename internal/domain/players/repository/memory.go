package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
)

// MemoryStore — in-memory реализация PlayerStore.
// Используется при STORAGE_TYPE=memory и в тестах. Семантика операций
// идентична PlayerRepository, включая ленивое создание записей.
type MemoryStore struct {
	mu   sync.Mutex
	data map[int64]*model.PlayerRecord
}

// NewMemoryStore создает новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]*model.PlayerRecord)}
}

// record возвращает запись игрока, создавая ее при отсутствии.
// Вызывается только под mu.
func (m *MemoryStore) record(userID int64) *model.PlayerRecord {
	rec, ok := m.data[userID]
	if !ok {
		rec = &model.PlayerRecord{UserID: userID}
		m.data[userID] = rec
	}
	return rec
}

func (m *MemoryStore) GetQuestionIndex(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.data[userID]; ok {
		return rec.QuestionIndex, nil
	}
	return 0, nil
}

func (m *MemoryStore) SetQuestionIndex(_ context.Context, userID int64, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(userID).QuestionIndex = index
	return nil
}

func (m *MemoryStore) ResetCurrentRun(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.data[userID]; ok {
		rec.CurrentRunScore = 0
	}
	return nil
}

func (m *MemoryStore) RecordCorrectAnswer(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.record(userID)
	rec.CurrentRunScore++
	if rec.CurrentRunScore > rec.BestScore {
		rec.BestScore = rec.CurrentRunScore
	}
	return nil
}

func (m *MemoryStore) RecordAnswerAndAdvance(_ context.Context, userID int64, isCorrect bool, nextIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.record(userID)
	rec.QuestionIndex = nextIndex
	if isCorrect {
		rec.CurrentRunScore++
		if rec.CurrentRunScore > rec.BestScore {
			rec.BestScore = rec.CurrentRunScore
		}
	}
	return nil
}

func (m *MemoryStore) GetCurrentRunScore(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.data[userID]; ok {
		return rec.CurrentRunScore, nil
	}
	return 0, nil
}

func (m *MemoryStore) GetBestScore(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.data[userID]; ok {
		return rec.BestScore, nil
	}
	return 0, nil
}

func (m *MemoryStore) ListAll(_ context.Context) ([]model.PlayerScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	scores := make([]model.PlayerScore, 0, len(m.data))
	for _, rec := range m.data {
		scores = append(scores, model.PlayerScore{UserID: rec.UserID, BestScore: rec.BestScore})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].UserID < scores[j].UserID })
	return scores, nil
}
