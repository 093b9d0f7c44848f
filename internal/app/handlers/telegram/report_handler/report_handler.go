package report_handler

import (
	"context"
	"log"
	"os"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	quizService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/quiz/service"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/report"
	"gopkg.in/telebot.v4"
)

// ReportHandler структура для обработки админской команды /report
type ReportHandler struct {
	quizService *quizService.QuizService
	adminIDs    []int64
}

// NewReportHandler возвращает структуру обработчика
func NewReportHandler(quizService *quizService.QuizService, adminIDs []int64) *ReportHandler {
	return &ReportHandler{
		quizService: quizService,
		adminIDs:    adminIDs,
	}
}

// isAdmin проверяет, входит ли пользователь в список администраторов.
func (h *ReportHandler) isAdmin(userID int64) bool {
	for _, id := range h.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Handle формирует PDF с рекордами игроков и отправляет его администратору
func (h *ReportHandler) Handle(c telebot.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Send(messages.NotAllowed)
	}

	ctx := context.Background()
	scores, err := h.quizService.Stats(ctx)
	if err != nil {
		log.Printf("Ошибка получения статистики для отчета: %v", err)
		return c.Send(messages.TryAgain)
	}

	reportFile, err := report.GenerateScoreReport(scores)
	if err != nil {
		log.Printf("Ошибка генерации отчета: %v", err)
		return c.Send(messages.TryAgain)
	}
	defer func() {
		if err := os.Remove(reportFile); err != nil {
			log.Printf("Ошибка удаления файла отчета %s: %v", reportFile, err)
		}
	}()

	doc := &telebot.Document{
		File:     telebot.FromDisk(reportFile),
		FileName: "quiz_scores.pdf",
	}
	return c.Send(doc)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ReportHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
