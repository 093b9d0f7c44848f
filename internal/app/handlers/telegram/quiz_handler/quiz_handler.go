package quiz_handler

import (
	"context"
	"log"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	quizService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// QuizHandler структура для обработки запуска игры (команда /quiz и кнопка)
type QuizHandler struct {
	quizService *quizService.QuizService
}

// NewQuizHandler возвращает структуру обработчика
func NewQuizHandler(quizService *quizService.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Handle начинает новую игру для отправителя
func (h *QuizHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	if err := h.quizService.StartGame(ctx, c.Sender().ID, c.Sender().FirstName); err != nil {
		log.Printf("Ошибка запуска игры userID=%d: %v", c.Sender().ID, err)
		return c.Send(messages.TryAgain)
	}
	return nil
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *QuizHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
