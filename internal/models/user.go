// models содержит доменные сущности фото-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и датастор-клиента.
package models

// User — внутренняя доменная модель пользователя.
// Важно:
//   - LocalID выдаётся identity-провайдером при регистрации и далее неизменен;
//   - Likes — множество идентификаторов картинок (храним срезом, порядок не важен);
//   - Avatar — путь к загруженному файлу либо пустая строка.
type User struct {
	LocalID   string   `bson:"_id"`
	Email     string   `bson:"email"`
	FirstName string   `bson:"first_name"`
	LastName  string   `bson:"last_name"`
	Avatar    string   `bson:"avatar"`
	Likes     []string `bson:"likes"`
}

// DisplayName собирает отображаемое имя для денормализации в карточке картинки.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Liked сообщает, лайкнул ли пользователь картинку.
func (u *User) Liked(imageID string) bool {
	for _, id := range u.Likes {
		if id == imageID {
			return true
		}
	}

	return false
}
