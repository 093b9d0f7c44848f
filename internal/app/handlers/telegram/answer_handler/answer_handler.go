package answer_handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	quizService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// AnswerHandler структура для обработки нажатий на кнопки вариантов ответа
type AnswerHandler struct {
	quizService *quizService.QuizService
}

// NewAnswerHandler возвращает структуру обработчика
func NewAnswerHandler(quizService *quizService.QuizService) *AnswerHandler {
	return &AnswerHandler{quizService: quizService}
}

// parseCallback разбирает callback-данные формата "<индекс вопроса>_<right|wrong>".
func parseCallback(data string) (int, bool, error) {
	cleaned := strings.TrimSpace(data)
	cleaned = strings.ReplaceAll(cleaned, "\f", "")

	parts := strings.Split(cleaned, "_")
	if len(parts) != 2 {
		return 0, false, fmt.Errorf("invalid callback data: %q", data)
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false, fmt.Errorf("invalid question index in callback data %q: %w", data, err)
	}

	switch parts[1] {
	case "right":
		return index, true, nil
	case "wrong":
		return index, false, nil
	default:
		return 0, false, fmt.Errorf("invalid answer marker in callback data: %q", data)
	}
}

// Handle обрабатывает выбранный вариант ответа
func (h *AnswerHandler) Handle(c telebot.Context) error {
	// Подтверждаем получение callback'а, чтобы у игрока не висели "часики".
	_ = c.Respond()

	index, isCorrect, err := parseCallback(c.Callback().Data)
	if err != nil {
		log.Printf("Некорректный callback от userID=%d: %v", c.Sender().ID, err)
		return nil
	}

	ctx := context.Background()
	err = h.quizService.AnswerSelected(ctx, c.Sender().ID, index, isCorrect)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, quizService.ErrStaleAnswer):
		// Повторное нажатие на уже пройденный вопрос, молча игнорируем.
		return nil
	case errors.Is(err, quizService.ErrNoActiveGame):
		return c.Send(messages.NoActiveGame)
	default:
		log.Printf("Ошибка обработки ответа userID=%d: %v", c.Sender().ID, err)
		return c.Send(messages.TryAgain)
	}
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *AnswerHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
