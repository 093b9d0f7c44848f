package model

// Question представляет один вопрос викторины.
// Порядок вариантов в Options значим: он определяет порядок кнопок
// и позицию правильного ответа.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}
