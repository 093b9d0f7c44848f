package model

// PlayerRecord представляет состояние игрока в таблице quiz_state.
// Запись создается лениво при первом событии от пользователя и никогда не удаляется.
type PlayerRecord struct {
	UserID          int64 `json:"user_id"`
	QuestionIndex   int   `json:"question_index"`
	CurrentRunScore int   `json:"current_run_score"`
	BestScore       int   `json:"best_score"`
}

// PlayerScore — срез статистики для команды /info, HTTP-отчета и PDF.
type PlayerScore struct {
	UserID    int64 `json:"user_id"`
	BestScore int   `json:"best_score"`
}
