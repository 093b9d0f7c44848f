package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
	playersService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/players/service"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/questions"
)

// Messenger — абстракция канала общения с игроком. Реализуется транспортным
// слоем (Telegram), в тестах подменяется фейком.
type Messenger interface {
	// SendText отправляет игроку обычное текстовое сообщение.
	SendText(userID int64, text string) error
	// SendQuestion отправляет вопрос с кнопками вариантов. Индекс вопроса
	// зашивается в callback-данные кнопок для защиты от устаревших ответов.
	SendQuestion(userID int64, index int, q model.Question) error
	// DisableLastControls убирает кнопки у последнего отправленного вопроса.
	// Если убирать нечего, ничего не делает.
	DisableLastControls(userID int64) error
}

// QuizService — движок прохождения викторины. Все изменения состояния игрока
// проходят через PlayerService; события одного игрока сериализуются
// per-user мьютексом, события разных игроков независимы.
type QuizService struct {
	bank      *questions.Bank
	players   *playersService.PlayerService
	messenger Messenger

	mu        sync.Mutex
	locks     map[int64]*sync.Mutex
	startBest map[int64]int
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(bank *questions.Bank, players *playersService.PlayerService, messenger Messenger) *QuizService {
	return &QuizService{
		bank:      bank,
		players:   players,
		messenger: messenger,
		locks:     make(map[int64]*sync.Mutex),
		startBest: make(map[int64]int),
	}
}

// userLock возвращает мьютекс конкретного игрока, создавая его при первом обращении.
func (s *QuizService) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// StartGame начинает новую игру из любого состояния: индекс вопроса
// сбрасывается на 0, счет текущей игры обнуляется, игроку уходит
// вступительное сообщение и первый вопрос.
func (s *QuizService) StartGame(ctx context.Context, userID int64, firstName string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.players.SetQuestionIndex(ctx, userID, 0); err != nil {
		return err
	}
	if err := s.players.ResetCurrentRun(ctx, userID); err != nil {
		return err
	}

	// Пустой набор вопросов: игра завершается, не начавшись.
	if s.bank.Len() == 0 {
		return s.messenger.SendText(userID, messages.EmptyBankText)
	}

	// Рекорд на момент старта: нужен в конце игры, чтобы отличить
	// повторение рекорда от его превышения.
	best, err := s.players.GetBestScore(ctx, userID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.startBest[userID] = best
	s.mu.Unlock()

	if err := s.messenger.SendText(userID, fmt.Sprintf(messages.GameIntroFmt, firstName, s.bank.Len())); err != nil {
		return fmt.Errorf("failed to send game intro: %w", err)
	}

	return s.sendQuestion(userID, 0)
}

// AnswerSelected обрабатывает выбор варианта ответа. questionIndex — индекс
// вопроса, к которому относится нажатие; если он не совпадает с сохраненным
// индексом игрока, событие устарело и отклоняется без изменения состояния.
func (s *QuizService) AnswerSelected(ctx context.Context, userID int64, questionIndex int, isCorrect bool) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.players.GetQuestionIndex(ctx, userID)
	if err != nil {
		return err
	}

	if current > s.bank.Len() {
		// Сохраненный индекс не может обгонять длину набора: это значит,
		// что проверка завершения игры была пропущена.
		return fmt.Errorf("stored question index %d exceeds bank length %d", current, s.bank.Len())
	}
	if s.bank.Len() == 0 || current == s.bank.Len() {
		return ErrNoActiveGame
	}
	if questionIndex != current {
		return ErrStaleAnswer
	}

	// Счет и индекс меняются одной операцией до любых отправок: если
	// отправка упадет и игрок нажмет кнопку повторно, нажатие отсечет
	// защита от устаревших ответов, а не засчитается второй раз.
	next := current + 1
	if err := s.players.RecordAnswerAndAdvance(ctx, userID, isCorrect, next); err != nil {
		return err
	}

	// Кнопки предыдущего вопроса гасим по возможности: сообщение могло быть
	// удалено самим игроком.
	_ = s.messenger.DisableLastControls(userID)

	feedback := messages.WrongAnswer
	if isCorrect {
		feedback = messages.CorrectAnswer
	}
	if err := s.messenger.SendText(userID, feedback); err != nil {
		return fmt.Errorf("failed to send answer feedback: %w", err)
	}

	if next < s.bank.Len() {
		return s.sendQuestion(userID, next)
	}
	return s.finishGame(ctx, userID)
}

// Stats возвращает снимок статистики по всем игрокам.
func (s *QuizService) Stats(ctx context.Context) ([]model.PlayerScore, error) {
	return s.players.ListAll(ctx)
}

// sendQuestion отправляет игроку вопрос с указанным индексом.
func (s *QuizService) sendQuestion(userID int64, index int) error {
	if err := s.messenger.SendQuestion(userID, index, s.bank.Get(index)); err != nil {
		return fmt.Errorf("failed to send question %d: %w", index, err)
	}
	return nil
}

// finishGame отправляет итог завершенной игры: счет игры и рекорд.
func (s *QuizService) finishGame(ctx context.Context, userID int64) error {
	run, err := s.players.GetCurrentRunScore(ctx, userID)
	if err != nil {
		return err
	}
	best, err := s.players.GetBestScore(ctx, userID)
	if err != nil {
		return err
	}

	// Рекорд в хранилище уже учитывает эту игру, поэтому сравниваем с
	// рекордом на момент старта. Если процесс перезапустился посреди
	// игры, считаем результат повторением, а не новым рекордом.
	s.mu.Lock()
	prevBest, ok := s.startBest[userID]
	delete(s.startBest, userID)
	s.mu.Unlock()
	if !ok {
		prevBest = best
	}

	summary := fmt.Sprintf(messages.GameFinishedFmt, run)
	if run > prevBest {
		summary += "\n" + messages.NewRecordFmt
	} else {
		summary += "\n" + fmt.Sprintf(messages.BestScoreFmt, best)
	}
	if err := s.messenger.SendText(userID, summary); err != nil {
		return fmt.Errorf("failed to send game summary: %w", err)
	}
	return nil
}
