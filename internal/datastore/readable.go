package datastore

import (
	"errors"

	"github.com/pribylovaa/go-photo-gallery/internal/auth"
)

// genericReadable — текст по умолчанию для причин, которых нет в таблице.
const genericReadable = "There was a problem with your request."

// readableErrors — фиксированная таблица перевода машинных кодов
// identity-провайдера в тексты для пользователя.
var readableErrors = map[auth.Code]string{
	auth.CodeInvalidPassword: "This is an invalid password",
	auth.CodeEmailNotFound:   "This email has not been registered",
	auth.CodeEmailExists:     "This email already exists. Try logging in instead.",
	auth.CodeTooManyAttempts: "Too many attempts, please try again later",
	auth.CodeUserDisabled:    "This account has been disabled by an administrator.",
}

// ReadableError — ошибка датастор-клиента, несущая готовый текст для
// пользователя. Исходная причина сохраняется в Err и доступна через Unwrap,
// но наружу (Error) уходит только читаемый текст.
type ReadableError struct {
	Reason string
	Err    error
}

func (e *ReadableError) Error() string { return e.Reason }

func (e *ReadableError) Unwrap() error { return e.Err }

// readable переводит произвольную ошибку нижних слоёв в ReadableError:
// код identity-провайдера ищется в таблице, всё остальное получает
// обобщённый текст.
func readable(err error) *ReadableError {
	if code, ok := auth.CodeOf(err); ok {
		if reason, known := readableErrors[code]; known {
			return &ReadableError{Reason: reason, Err: err}
		}
	}

	return &ReadableError{Reason: genericReadable, Err: err}
}

// IsReadable сообщает, несёт ли ошибка готовый пользовательский текст.
func IsReadable(err error) bool {
	var re *ReadableError
	return errors.As(err, &re)
}
