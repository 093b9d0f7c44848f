package questions

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
)

// Bank — упорядоченный неизменяемый набор вопросов викторины.
// Загружается один раз при старте, длина набора определяет длину игры.
type Bank struct {
	questions []model.Question
}

// Load загружает вопросы из указанного JSON-файла и валидирует их.
func Load(filename string) (*Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл с вопросами: %w", err)
	}
	var qs []model.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("не удалось разобрать JSON: %w", err)
	}
	bank := New(qs)
	if err := bank.validate(); err != nil {
		return nil, err
	}
	return bank, nil
}

// New создает Bank из готового набора вопросов (используется в тестах).
func New(qs []model.Question) *Bank {
	return &Bank{questions: qs}
}

// Get возвращает вопрос по индексу. Выход за границы — ошибка программиста:
// движок обязан проверять индекс через Len до обращения.
func (b *Bank) Get(i int) model.Question {
	return b.questions[i]
}

// Len возвращает количество вопросов в наборе.
func (b *Bank) Len() int {
	return len(b.questions)
}

// validate проверяет каждый вопрос: непустой текст, минимум два варианта,
// индекс правильного ответа в пределах вариантов.
func (b *Bank) validate() error {
	for i, q := range b.questions {
		if q.Text == "" {
			return fmt.Errorf("вопрос %d: пустой текст", i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("вопрос %d: меньше двух вариантов ответа", i)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return fmt.Errorf("вопрос %d: индекс правильного ответа %d вне диапазона вариантов", i, q.CorrectOption)
		}
	}
	return nil
}
