package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
	playersRepo "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/players/repository"
	playersService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/players/service"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/questions"
)

// fakeMessenger записывает отправленные сообщения вместо обращения к Telegram.
// Через textErr можно один раз провалить отправку текста.
type fakeMessenger struct {
	texts     []string
	questions []int
	disabled  int
	textErr   error
}

func (f *fakeMessenger) SendText(_ int64, text string) error {
	if f.textErr != nil {
		err := f.textErr
		f.textErr = nil
		return err
	}
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeMessenger) SendQuestion(_ int64, index int, _ model.Question) error {
	f.questions = append(f.questions, index)
	return nil
}

func (f *fakeMessenger) DisableLastControls(_ int64) error {
	f.disabled++
	return nil
}

func (f *fakeMessenger) lastText() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

// testQuestions создает набор из n однотипных вопросов, правильный вариант — первый.
func testQuestions(n int) []model.Question {
	qs := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, model.Question{
			Text:          "Вопрос",
			Options:       []string{"Да", "Нет"},
			CorrectOption: 0,
		})
	}
	return qs
}

// newTestQuiz собирает движок на in-memory хранилище и фейковом мессенджере.
func newTestQuiz(qs []model.Question) (*QuizService, *playersRepo.MemoryStore, *fakeMessenger) {
	store := playersRepo.NewMemoryStore()
	msgr := &fakeMessenger{}
	quiz := NewQuizService(questions.New(qs), playersService.NewPlayerService(store), msgr)
	return quiz, store, msgr
}

// TestSingleQuestionGame проверяет игру из одного вопроса: после правильного
// ответа игра завершена, рекорд равен 1, повторные ответы отклоняются.
func TestSingleQuestionGame(t *testing.T) {
	quiz, store, msgr := newTestQuiz(testQuestions(1))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 1, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	if err := quiz.AnswerSelected(ctx, 1, 0, true); err != nil {
		t.Fatalf("AnswerSelected вернул ошибку: %v", err)
	}

	best, err := store.GetBestScore(ctx, 1)
	if err != nil {
		t.Fatalf("GetBestScore вернул ошибку: %v", err)
	}
	if best != 1 {
		t.Errorf("Ожидался рекорд 1, получено %d", best)
	}
	if !strings.Contains(msgr.lastText(), "Твой итоговый счет: 1 баллов") {
		t.Errorf("Ожидалось итоговое сообщение со счетом 1, получено: %q", msgr.lastText())
	}

	// Игра завершена, новые ответы не должны менять состояние.
	if err := quiz.AnswerSelected(ctx, 1, 1, true); !errors.Is(err, ErrNoActiveGame) {
		t.Errorf("Ожидалась ошибка ErrNoActiveGame, получено: %v", err)
	}
	index, _ := store.GetQuestionIndex(ctx, 1)
	if index != 1 {
		t.Errorf("Индекс вопроса после завершения игры изменился: %d", index)
	}
}

// TestAllWrongAnswers проверяет игру из трех вопросов, на которые даны
// только неправильные ответы: игра завершается, рекорд остается 0.
func TestAllWrongAnswers(t *testing.T) {
	quiz, store, msgr := newTestQuiz(testQuestions(3))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 7, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := quiz.AnswerSelected(ctx, 7, i, false); err != nil {
			t.Fatalf("AnswerSelected(%d) вернул ошибку: %v", i, err)
		}
	}

	best, _ := store.GetBestScore(ctx, 7)
	if best != 0 {
		t.Errorf("Ожидался рекорд 0, получено %d", best)
	}
	if !strings.Contains(msgr.lastText(), "Твой итоговый счет: 0 баллов") {
		t.Errorf("Ожидалось итоговое сообщение со счетом 0, получено: %q", msgr.lastText())
	}
	if err := quiz.AnswerSelected(ctx, 7, 3, false); !errors.Is(err, ErrNoActiveGame) {
		t.Errorf("Ожидалась ошибка ErrNoActiveGame, получено: %v", err)
	}
}

// TestBestScoreSurvivesWorseRun проверяет, что рекорд не уменьшается после
// менее удачной игры: 2 из 3 в первой игре, 1 из 3 во второй.
func TestBestScoreSurvivesWorseRun(t *testing.T) {
	quiz, store, _ := newTestQuiz(testQuestions(3))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 2, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	for i, correct := range []bool{true, true, false} {
		if err := quiz.AnswerSelected(ctx, 2, i, correct); err != nil {
			t.Fatalf("AnswerSelected(%d) вернул ошибку: %v", i, err)
		}
	}

	if err := quiz.StartGame(ctx, 2, "Игрок"); err != nil {
		t.Fatalf("Повторный StartGame вернул ошибку: %v", err)
	}
	run, _ := store.GetCurrentRunScore(ctx, 2)
	if run != 0 {
		t.Errorf("StartGame не сбросил счет текущей игры: %d", run)
	}
	for i, correct := range []bool{true, false, false} {
		if err := quiz.AnswerSelected(ctx, 2, i, correct); err != nil {
			t.Fatalf("AnswerSelected(%d) во второй игре вернул ошибку: %v", i, err)
		}
	}

	best, _ := store.GetBestScore(ctx, 2)
	if best != 2 {
		t.Errorf("Ожидался рекорд 2 после второй игры, получено %d", best)
	}
}

// TestStaleAnswerRejected проверяет защиту от повторного нажатия: второй ответ
// на уже пройденный вопрос отклоняется и не меняет счет.
func TestStaleAnswerRejected(t *testing.T) {
	quiz, store, _ := newTestQuiz(testQuestions(3))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 3, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	if err := quiz.AnswerSelected(ctx, 3, 0, true); err != nil {
		t.Fatalf("AnswerSelected вернул ошибку: %v", err)
	}
	if err := quiz.AnswerSelected(ctx, 3, 0, true); !errors.Is(err, ErrStaleAnswer) {
		t.Fatalf("Ожидалась ошибка ErrStaleAnswer, получено: %v", err)
	}

	run, _ := store.GetCurrentRunScore(ctx, 3)
	if run != 1 {
		t.Errorf("Повторный ответ изменил счет: %d", run)
	}
	index, _ := store.GetQuestionIndex(ctx, 3)
	if index != 1 {
		t.Errorf("Повторный ответ изменил индекс вопроса: %d", index)
	}
}

// TestSendFailureDoesNotDoubleScore проверяет, что ответ засчитывается до
// отправок: если отправка реакции упала и игрок нажал кнопку повторно,
// правильный ответ не засчитывается второй раз.
func TestSendFailureDoesNotDoubleScore(t *testing.T) {
	quiz, store, msgr := newTestQuiz(testQuestions(3))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 9, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}

	msgr.textErr = errors.New("telegram: timeout")
	if err := quiz.AnswerSelected(ctx, 9, 0, true); err == nil {
		t.Fatal("Ожидалась ошибка при сбое отправки, получен nil")
	}

	// Состояние уже сдвинуто, повторное нажатие той же кнопки устарело.
	if err := quiz.AnswerSelected(ctx, 9, 0, true); !errors.Is(err, ErrStaleAnswer) {
		t.Fatalf("Ожидалась ошибка ErrStaleAnswer, получено: %v", err)
	}

	run, _ := store.GetCurrentRunScore(ctx, 9)
	if run != 1 {
		t.Errorf("Ожидался счет 1 за один правильный ответ, получено %d", run)
	}
	best, _ := store.GetBestScore(ctx, 9)
	if best != 1 {
		t.Errorf("Ожидался рекорд 1, получено %d", best)
	}
	index, _ := store.GetQuestionIndex(ctx, 9)
	if index != 1 {
		t.Errorf("Ожидался индекс вопроса 1, получено %d", index)
	}
}

// TestStartGameResetsMidRun проверяет перезапуск посреди игры: индекс и счет
// текущей игры сбрасываются, первый вопрос отправляется заново.
func TestStartGameResetsMidRun(t *testing.T) {
	quiz, store, msgr := newTestQuiz(testQuestions(3))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 6, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	if err := quiz.AnswerSelected(ctx, 6, 0, true); err != nil {
		t.Fatalf("AnswerSelected вернул ошибку: %v", err)
	}

	if err := quiz.StartGame(ctx, 6, "Игрок"); err != nil {
		t.Fatalf("Повторный StartGame вернул ошибку: %v", err)
	}

	index, _ := store.GetQuestionIndex(ctx, 6)
	if index != 0 {
		t.Errorf("Ожидался индекс вопроса 0 после перезапуска, получено %d", index)
	}
	run, _ := store.GetCurrentRunScore(ctx, 6)
	if run != 0 {
		t.Errorf("Ожидался сброшенный счет 0, получено %d", run)
	}
	want := []int{0, 1, 0}
	if len(msgr.questions) != len(want) {
		t.Fatalf("Ожидались вопросы %v, получено %v", want, msgr.questions)
	}
	for i := range want {
		if msgr.questions[i] != want[i] {
			t.Fatalf("Ожидались вопросы %v, получено %v", want, msgr.questions)
		}
	}
}

// TestTiedRunIsNotNewRecord проверяет итоговое сообщение: повторение рекорда
// не объявляется новым рекордом, превышение — объявляется.
func TestTiedRunIsNotNewRecord(t *testing.T) {
	quiz, _, msgr := newTestQuiz(testQuestions(2))
	ctx := context.Background()

	playGame := func(answers []bool) {
		t.Helper()
		if err := quiz.StartGame(ctx, 8, "Игрок"); err != nil {
			t.Fatalf("StartGame вернул ошибку: %v", err)
		}
		for i, correct := range answers {
			if err := quiz.AnswerSelected(ctx, 8, i, correct); err != nil {
				t.Fatalf("AnswerSelected(%d) вернул ошибку: %v", i, err)
			}
		}
	}

	playGame([]bool{true, false})
	if !strings.Contains(msgr.lastText(), messages.NewRecordFmt) {
		t.Errorf("Первый результат должен был стать рекордом, получено: %q", msgr.lastText())
	}

	// Та же единица во второй игре — повторение, не новый рекорд.
	playGame([]bool{true, false})
	if strings.Contains(msgr.lastText(), messages.NewRecordFmt) {
		t.Errorf("Повторение рекорда объявлено новым рекордом: %q", msgr.lastText())
	}
	if !strings.Contains(msgr.lastText(), "Твой рекорд: 1 баллов") {
		t.Errorf("Ожидалось напоминание о рекорде 1, получено: %q", msgr.lastText())
	}

	playGame([]bool{true, true})
	if !strings.Contains(msgr.lastText(), messages.NewRecordFmt) {
		t.Errorf("Превышение рекорда не объявлено новым рекордом: %q", msgr.lastText())
	}
}

// TestQuestionFlow проверяет порядок презентации: вопросы идут по порядку,
// после каждого ответа гасятся кнопки и отправляется реакция.
func TestQuestionFlow(t *testing.T) {
	quiz, _, msgr := newTestQuiz(testQuestions(2))
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 4, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	if err := quiz.AnswerSelected(ctx, 4, 0, true); err != nil {
		t.Fatalf("AnswerSelected вернул ошибку: %v", err)
	}

	if len(msgr.questions) != 2 || msgr.questions[0] != 0 || msgr.questions[1] != 1 {
		t.Errorf("Ожидались вопросы [0 1], получено %v", msgr.questions)
	}
	if msgr.disabled != 1 {
		t.Errorf("Ожидалось одно отключение кнопок, получено %d", msgr.disabled)
	}
	found := false
	for _, text := range msgr.texts {
		if text == messages.CorrectAnswer {
			found = true
		}
	}
	if !found {
		t.Errorf("Реакция на правильный ответ не отправлена: %v", msgr.texts)
	}
}

// TestEmptyBank проверяет, что при пустом наборе вопросов игра завершается
// сразу и ответы отклоняются.
func TestEmptyBank(t *testing.T) {
	quiz, _, msgr := newTestQuiz(nil)
	ctx := context.Background()

	if err := quiz.StartGame(ctx, 5, "Игрок"); err != nil {
		t.Fatalf("StartGame вернул ошибку: %v", err)
	}
	if msgr.lastText() != messages.EmptyBankText {
		t.Errorf("Ожидалось сообщение о пустом наборе, получено: %q", msgr.lastText())
	}
	if len(msgr.questions) != 0 {
		t.Errorf("Вопросы не должны отправляться из пустого набора: %v", msgr.questions)
	}
	if err := quiz.AnswerSelected(ctx, 5, 0, true); !errors.Is(err, ErrNoActiveGame) {
		t.Errorf("Ожидалась ошибка ErrNoActiveGame, получено: %v", err)
	}
}

// TestStats проверяет снимок статистики для двух игроков.
func TestStats(t *testing.T) {
	quiz, store, _ := newTestQuiz(testQuestions(1))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.RecordCorrectAnswer(ctx, 10); err != nil {
			t.Fatalf("RecordCorrectAnswer вернул ошибку: %v", err)
		}
	}
	for i := 0; i < 7; i++ {
		if err := store.RecordCorrectAnswer(ctx, 20); err != nil {
			t.Fatalf("RecordCorrectAnswer вернул ошибку: %v", err)
		}
	}

	scores, err := quiz.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats вернул ошибку: %v", err)
	}
	want := []model.PlayerScore{{UserID: 10, BestScore: 5}, {UserID: 20, BestScore: 7}}
	if len(scores) != len(want) {
		t.Fatalf("Ожидалось %d записей, получено %d", len(want), len(scores))
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("Запись %d: ожидалось %+v, получено %+v", i, want[i], scores[i])
		}
	}
}
