package telegram

import (
	"fmt"
	"sync"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// AnswerButtonUnique — unique-идентификатор кнопок вариантов ответа.
// По нему в App регистрируется обработчик callback'ов.
const AnswerButtonUnique = "answer"

const (
	markerRight = "right"
	markerWrong = "wrong"
)

// BotAPI — часть интерфейса telebot.Bot, которая нужна мессенджеру.
type BotAPI interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
	EditReplyMarkup(msg telebot.Editable, markup *telebot.ReplyMarkup) (*telebot.Message, error)
}

// Messenger отправляет сообщения игрокам через Telegram и запоминает
// последнее сообщение с вопросом, чтобы потом погасить его кнопки.
type Messenger struct {
	bot BotAPI

	mu            sync.Mutex
	lastQuestions map[int64]int
}

// NewMessenger создает новый экземпляр Messenger
func NewMessenger(bot BotAPI) *Messenger {
	return &Messenger{
		bot:           bot,
		lastQuestions: make(map[int64]int),
	}
}

// SendText отправляет игроку текстовое сообщение.
func (m *Messenger) SendText(userID int64, text string) error {
	if _, err := m.bot.Send(&telebot.User{ID: userID}, text); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendQuestion отправляет вопрос с inline-кнопками вариантов, по кнопке на строку.
// В callback-данные каждой кнопки зашивается индекс вопроса и маркер
// правильности, сам маркер игроку не виден.
func (m *Messenger) SendQuestion(userID int64, index int, q model.Question) error {
	rows := make([][]telebot.InlineButton, 0, len(q.Options))
	for i, opt := range q.Options {
		marker := markerWrong
		if i == q.CorrectOption {
			marker = markerRight
		}
		btn := telebot.InlineButton{
			Text:   opt,
			Unique: AnswerButtonUnique,
			Data:   fmt.Sprintf("%d_%s", index, marker),
		}
		rows = append(rows, []telebot.InlineButton{btn})
	}

	rm := &telebot.ReplyMarkup{InlineKeyboard: rows}
	msg, err := m.bot.Send(&telebot.User{ID: userID}, q.Text, rm)
	if err != nil {
		return fmt.Errorf("failed to send question: %w", err)
	}

	m.mu.Lock()
	m.lastQuestions[userID] = msg.ID
	m.mu.Unlock()
	return nil
}

// DisableLastControls убирает клавиатуру у последнего отправленного вопроса.
// Если вопрос еще не отправлялся или кнопки уже погашены, ничего не делает.
func (m *Messenger) DisableLastControls(userID int64) error {
	m.mu.Lock()
	msgID, ok := m.lastQuestions[userID]
	m.mu.Unlock()

	if !ok {
		return nil
	}

	msg := &telebot.Message{
		ID:   msgID,
		Chat: &telebot.Chat{ID: userID},
	}
	if _, err := m.bot.EditReplyMarkup(msg, nil); err != nil {
		return fmt.Errorf("failed to disable question keyboard: %w", err)
	}

	// Запись удаляется только после успешного редактирования, чтобы
	// повторный вызов после сбоя попробовал еще раз. К этому моменту
	// игроку мог уйти новый вопрос, тогда запись уже не наша.
	m.mu.Lock()
	if id, ok := m.lastQuestions[userID]; ok && id == msgID {
		delete(m.lastQuestions, userID)
	}
	m.mu.Unlock()
	return nil
}
