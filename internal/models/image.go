package models

// Image — внутренняя доменная модель картинки.
// Важно:
//   - ID — UUID, присваивается один раз при загрузке и далее неизменен;
//   - UserName/UserAvatar — денормализованный снимок данных владельца на момент
//     загрузки; при редактировании профиля снимок НЕ пересинхронизируется;
//   - CreatedAt — unix-время в секундах;
//   - запись перезаписывается целиком (replace), а не патчится.
type Image struct {
	ID             string `bson:"_id"`
	UploadLocation string `bson:"upload_location"`
	UserID         string `bson:"user_id"`
	UserName       string `bson:"user_name"`
	UserAvatar     string `bson:"user_avatar"`
	Name           string `bson:"name"`
	Description    string `bson:"description"`
	Category       string `bson:"category"`
	Filter         string `bson:"filter"`
	CreatedAt      int64  `bson:"created_at"`
}
