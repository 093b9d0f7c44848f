package info_handler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	quizService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// InfoHandler структура для обработки команды /info
type InfoHandler struct {
	quizService *quizService.QuizService
}

// NewInfoHandler возвращает структуру обработчика
func NewInfoHandler(quizService *quizService.QuizService) *InfoHandler {
	return &InfoHandler{quizService: quizService}
}

// Handle отправляет статистику по всем игрокам
func (h *InfoHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	scores, err := h.quizService.Stats(ctx)
	if err != nil {
		log.Printf("Ошибка получения статистики: %v", err)
		return c.Send(messages.TryAgain)
	}

	if len(scores) == 0 {
		return c.Send(messages.StatsEmpty)
	}

	var b strings.Builder
	b.WriteString(messages.StatsHeader)
	for _, s := range scores {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(messages.StatsLineFmt, s.UserID, s.BestScore))
	}
	return c.Send(b.String())
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *InfoHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
