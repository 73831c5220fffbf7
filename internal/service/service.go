// service содержит бизнес-логику gallery-service:
// - аккаунт: регистрация/вход/выход, апдейт профиля, лайки;
// - картинки: списки (все/по категории/свои), карточка, загрузка,
//   полная перезапись, удаление.
//
// Принципы:
//   - сессия передаётся явным параметром *models.Session — никаких
//     ambient-обращений к состоянию запроса;
//   - валидация «первая нарушенная проверка решает»: дальше проверок не идём,
//     наружу уходит ровно одно сообщение;
//   - ошибки не глотаются: слой логирует и пробрасывает причину выше,
//     финальная граница (веб-слой) отвечает за HTTP-представление.
package service

import (
	"errors"

	"github.com/pribylovaa/go-photo-gallery/internal/config"
	"github.com/pribylovaa/go-photo-gallery/internal/datastore"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

// minPasswordLen — минимальная длина пароля при регистрации.
const minPasswordLen = 6

// Ошибки валидации. Текст каждой — готовое сообщение для пользователя,
// поэтому формулировки фиксированы продуктом и не подчиняются go-стилю
// «строчная без точки».
var (
	ErrEmailRequired           = errors.New("An email is required.")
	ErrPasswordRequired        = errors.New("Password is required.")
	ErrPasswordTooShort        = errors.New("Your password must be at least 6 characters long.")
	ErrPasswordConfirmRequired = errors.New("Password confirmation is required.")
	ErrPasswordMismatch        = errors.New("Password and password confirmation should match.")
	ErrFirstNameRequired       = errors.New("A first name is required.")
	ErrLastNameRequired        = errors.New("A last name is required.")
	ErrFileRequired            = errors.New("A file is required.")
	ErrNameRequired            = errors.New("A name is required.")
	ErrDescriptionRequired     = errors.New("A description is required.")
	ErrCategoryRequired        = errors.New("A category is required.")
	ErrLoginRequired           = errors.New("You must be logged in.")
	ErrUploadLoginRequired     = errors.New("You must be logged in to upload an image.")
	ErrUpdateLoginRequired     = errors.New("You must be logged in to update an image.")
)

// validationErrors — реестр для извлечения пользовательского текста из цепочки.
var validationErrors = []error{
	ErrEmailRequired,
	ErrPasswordRequired,
	ErrPasswordTooShort,
	ErrPasswordConfirmRequired,
	ErrPasswordMismatch,
	ErrFirstNameRequired,
	ErrLastNameRequired,
	ErrFileRequired,
	ErrNameRequired,
	ErrDescriptionRequired,
	ErrCategoryRequired,
	ErrLoginRequired,
	ErrUploadLoginRequired,
	ErrUpdateLoginRequired,
}

// UserMessage извлекает из цепочки ошибок текст, пригодный для показа
// пользователю: ошибки валидации и переведённые ошибки датастора несут его
// сами, всё прочее получает обобщённый текст. Хелпер для финальной границы.
func UserMessage(err error) string {
	for _, ve := range validationErrors {
		if errors.Is(err, ve) {
			return ve.Error()
		}
	}

	var re *datastore.ReadableError
	if errors.As(err, &re) {
		return re.Reason
	}

	return "There was a problem with your request."
}

// Service — бизнес-логика фото-сервиса.
type Service struct {
	cfg   *config.Config
	store datastore.Store
	files storage.FilesStorage
}

// New создаёт новый экземпляр Service.
func New(store datastore.Store, files storage.FilesStorage, cfg *config.Config) *Service {
	return &Service{
		cfg:   cfg,
		store: store,
		files: files,
	}
}
