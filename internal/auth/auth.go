// auth реализует identity-провайдера фото-сервиса: выпуск localId при
// регистрации и проверку пары email+пароль при входе.
//
// Ошибки провайдера несут машинный код (поле Code) — именно он служит ключом
// таблицы читаемых ошибок в datastore-клиенте. Набор кодов повторяет коды
// внешнего identity-сервиса, которые обязан понимать вызывающий.
package auth

import (
	"context"
	"errors"
)

// Code — машинный код ошибки identity-провайдера.
type Code string

const (
	CodeEmailExists     Code = "EMAIL_EXISTS"
	CodeEmailNotFound   Code = "EMAIL_NOT_FOUND"
	CodeInvalidPassword Code = "INVALID_PASSWORD"
	CodeTooManyAttempts Code = "TOO_MANY_ATTEMPTS_TRY_LATER"
	CodeUserDisabled    Code = "USER_DISABLED"
)

// Error — структурированная ошибка identity-провайдера.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Err.Error()
	}

	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf извлекает машинный код из цепочки ошибок.
// Возвращает пустой код, если ошибка не от identity-провайдера.
func CodeOf(err error) (Code, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code, true
	}

	return "", false
}

// Identity — контракт identity-провайдера.
type Identity interface {
	// SignUp создаёт учётку email+password и возвращает выданный localId.
	// Возможные коды: EMAIL_EXISTS.
	SignUp(ctx context.Context, email, password string) (string, error)
	// SignIn проверяет пару email+password и возвращает localId учётки.
	// Возможные коды: EMAIL_NOT_FOUND, INVALID_PASSWORD,
	// TOO_MANY_ATTEMPTS_TRY_LATER, USER_DISABLED.
	SignIn(ctx context.Context, email, password string) (string, error)
}
