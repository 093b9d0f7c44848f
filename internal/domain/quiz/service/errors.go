package service

import "errors"

var (
	// ErrNoActiveGame возвращается, когда ответ приходит вне активной игры.
	ErrNoActiveGame = errors.New("no active game for user")
	// ErrStaleAnswer возвращается, когда ответ относится не к текущему вопросу
	// (повторное нажатие или устаревшее событие).
	ErrStaleAnswer = errors.New("answer for stale question")
)
