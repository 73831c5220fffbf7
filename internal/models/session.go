package models

import "io"

// Session — явное состояние «текущий пользователь» на время запроса/сессии.
// Передаётся параметром во все сервисные вызовы вместо обращения к
// ambient-хранилищу веб-фреймворка. Копия пользователя в сессии — единственный
// источник правды о «текущем пользователе»; каждая мутация записывается
// обратно в хранилище.
type Session struct {
	User *User
}

// SetUser сохраняет пользователя в сессии (логин).
func (s *Session) SetUser(u *User) {
	s.User = u
}

// Clear сбрасывает сессию (логаут).
func (s *Session) Clear() {
	s.User = nil
}

// LoggedIn сообщает, аутентифицирована ли сессия.
func (s *Session) LoggedIn() bool {
	return s != nil && s.User != nil && s.User.LocalID != ""
}

// FileUpload — загружаемый файл, как его видит сервисный слой.
// Content читается ровно один раз при сохранении в объектное хранилище.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}
