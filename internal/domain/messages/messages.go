// Package messages содержит тексты, которые бот отправляет игрокам.
// Тексты фиксированные, параметры подставляются через fmt.Sprintf.
package messages

const (
	// WelcomeFmt — приветствие по команде /start. Параметр: имя игрока.
	WelcomeFmt = "Привет, %s. Нажми на кнопку, чтобы начать игру, или напиши \"quiz\".\nДля просмотра статистики по всем игрокам, используй команду \"/info\""

	// GameIntroFmt — сообщение перед первым вопросом. Параметр: имя игрока.
	GameIntroFmt = "Привет, %s! Сегодня у тебя есть уникальная возможность сыграть в небольшую игру и правильно ответить на %d вопросов. Только не ожидай, что игра будет честной, а ответы очевидными. Удачи!"

	// CorrectAnswer и WrongAnswer — реакция на выбранный вариант.
	CorrectAnswer = "Поздравляю, ты угадал!"
	WrongAnswer   = "Увы, но нет!"

	// GameFinishedFmt — итог игры. Параметр: счет завершенной игры.
	GameFinishedFmt = "Это был последний вопрос. Поздравляю с окончанием! Надеюсь, тебе понравилось :)\nТвой итоговый счет: %d баллов"

	// NewRecordFmt и BestScoreFmt — дополнение к итогу игры.
	NewRecordFmt  = "Это твой новый рекорд!"
	BestScoreFmt  = "Твой рекорд: %d баллов"
	EmptyBankText = "Вопросы закончились, даже не начавшись. Загляни позже!"

	// StatsHeader и StatsLineFmt — вывод команды /info.
	StatsHeader  = "Статистика по игрокам:"
	StatsLineFmt = "ID игрока: %d, Количество баллов: %d"
	StatsEmpty   = "Пока никто не играл."

	// NoActiveGame — ответ на нажатие кнопки без активной игры.
	NoActiveGame = "Игра не запущена. Напиши \"quiz\", чтобы начать."

	// TryAgain — общий ответ при внутренней ошибке, без деталей.
	TryAgain = "Что-то пошло не так. Попробуй еще раз."

	// StartGameButton — текст кнопки запуска игры.
	StartGameButton = "Начать игру"

	// NotAllowed — ответ на админскую команду без прав.
	NotAllowed = "Эта команда доступна только администратору."
)
