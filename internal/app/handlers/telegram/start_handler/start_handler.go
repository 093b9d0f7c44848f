package start_handler

import (
	"fmt"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	"gopkg.in/telebot.v4"
)

// StartHandler структура для обработки команды /start
type StartHandler struct{}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

// Handle отправляет приветствие и клавиатуру с кнопкой запуска игры
func (h *StartHandler) Handle(c telebot.Context) error {
	rm := &telebot.ReplyMarkup{
		ReplyKeyboard: [][]telebot.ReplyButton{
			{{Text: messages.StartGameButton}},
		},
		ResizeKeyboard: true,
	}

	return c.Send(fmt.Sprintf(messages.WelcomeFmt, c.Sender().FirstName), rm)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
