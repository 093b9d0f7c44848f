package middleware

import (
	"errors"
	"log"

	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, которое перехватывает панику в обработчике,
// логирует ее и превращает в обычную ошибку, чтобы падение одного обновления
// не останавливало обработку остальных.
func Recover() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = errors.New("unknown panic")
					}
					log.Printf("Recovered from panic: %v", e)
					err = e
				}
			}()
			return next(c)
		}
	}
}
