package datastore

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-photo-gallery/internal/auth"
	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
	"github.com/pribylovaa/go-photo-gallery/mocks"
)

func newClient(t *testing.T) (*Client, *mocks.MockUsersStorage, *mocks.MockImagesStorage, *mocks.MockIdentity, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersStorage(ctrl)
	images := mocks.NewMockImagesStorage(ctrl)
	identity := mocks.NewMockIdentity(ctrl)
	c := New(users, images, identity)
	return c, users, images, identity, ctrl
}

func TestImages_OK(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	want := []models.Image{{ID: "img-1"}, {ID: "img-2"}}
	images.EXPECT().Images(gomock.Any(), int32(10), "").Return(want, nil)

	got, err := c.Images(context.Background(), 10, "")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestImages_Empty_ErrNoImages(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	images.EXPECT().Images(gomock.Any(), int32(10), "").Return([]models.Image{}, nil)

	_, err := c.Images(context.Background(), 10, "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoImages)
	// Пустая выдача — значимый исход, а не читаемая ошибка запроса.
	require.False(t, IsReadable(err))
}

func TestImages_StorageError_Readable(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	cause := errors.New("db down")
	images.EXPECT().Images(gomock.Any(), int32(10), "uid-1").Return(nil, cause)

	_, err := c.Images(context.Background(), 10, "uid-1")
	require.Error(t, err)
	require.True(t, IsReadable(err))
	require.ErrorIs(t, err, cause)

	var re *ReadableError
	require.ErrorAs(t, err, &re)
	require.Equal(t, genericReadable, re.Reason)
}

func TestCategoryImages_OK_And_Empty(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	want := []models.Image{{ID: "img-1", Category: "nature"}}
	images.EXPECT().ImagesByCategory(gomock.Any(), "nature", int32(5)).Return(want, nil)
	images.EXPECT().ImagesByCategory(gomock.Any(), "void", int32(5)).Return(nil, nil)

	got, err := c.CategoryImages(context.Background(), "nature", 5)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = c.CategoryImages(context.Background(), "void", 5)
	require.ErrorIs(t, err, ErrNoImages)
}

func TestImage_OK(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	want := &models.Image{ID: "img-1", Name: "sunset"}
	images.EXPECT().ImageByID(gomock.Any(), "img-1").Return(want, nil)

	got, err := c.Image(context.Background(), "img-1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestImage_NotFound_Sentinel(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	images.EXPECT().ImageByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	_, err := c.Image(context.Background(), "missing")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, IsReadable(err))
}

func TestImage_StorageError_Readable(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	images.EXPECT().ImageByID(gomock.Any(), "img-1").Return(nil, errors.New("db down"))

	_, err := c.Image(context.Background(), "img-1")
	require.Error(t, err)
	require.True(t, IsReadable(err))
}

func TestSaveImage_And_DeleteImage(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	img := &models.Image{ID: "img-1"}
	images.EXPECT().ReplaceImage(gomock.Any(), img).Return(nil)
	images.EXPECT().DeleteImage(gomock.Any(), "img-1").Return(nil)

	require.NoError(t, c.SaveImage(context.Background(), img))
	require.NoError(t, c.DeleteImage(context.Background(), "img-1"))
}

func TestSaveImage_StorageError_Readable(t *testing.T) {
	t.Parallel()

	c, _, images, _, ctrl := newClient(t)
	defer ctrl.Finish()

	images.EXPECT().ReplaceImage(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := c.SaveImage(context.Background(), &models.Image{ID: "img-1"})
	require.Error(t, err)
	require.True(t, IsReadable(err))
}

func TestRegister_StampsLocalIDAndReplaces(t *testing.T) {
	t.Parallel()

	c, users, _, identity, ctrl := newClient(t)
	defer ctrl.Finish()

	identity.EXPECT().SignUp(gomock.Any(), "user@example.com", "secret123").
		Return("uid-42", nil)

	var saved *models.User
	users.EXPECT().ReplaceUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})

	user := &models.User{Email: "user@example.com"}
	localID, err := c.Register(context.Background(), user, "secret123")
	require.NoError(t, err)
	require.Equal(t, "uid-42", localID)

	require.NotNil(t, saved)
	// LocalID сохранённой записи равен выданному провайдером localId.
	require.Equal(t, "uid-42", saved.LocalID)
	// nil-лайки нормализуются к пустому срезу.
	require.NotNil(t, saved.Likes)
	require.Empty(t, saved.Likes)
}

func TestRegister_EmailExists_ReadableText(t *testing.T) {
	t.Parallel()

	c, _, _, identity, ctrl := newClient(t)
	defer ctrl.Finish()

	identity.EXPECT().SignUp(gomock.Any(), "user@example.com", "secret123").
		Return("", &auth.Error{Code: auth.CodeEmailExists})

	_, err := c.Register(context.Background(), &models.User{Email: "user@example.com"}, "secret123")
	require.Error(t, err)

	var re *ReadableError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "This email already exists. Try logging in instead.", re.Reason)
}

func TestLogin_OK(t *testing.T) {
	t.Parallel()

	c, users, _, identity, ctrl := newClient(t)
	defer ctrl.Finish()

	identity.EXPECT().SignIn(gomock.Any(), "user@example.com", "secret123").
		Return("uid-42", nil)
	want := &models.User{LocalID: "uid-42", Email: "user@example.com", Likes: []string{}}
	users.EXPECT().UserByID(gomock.Any(), "uid-42").Return(want, nil)

	got, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLogin_IdentityCodes_ReadableTexts(t *testing.T) {
	t.Parallel()

	c, _, _, identity, ctrl := newClient(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		code auth.Code
		want string
	}{
		{name: "invalid_password", code: auth.CodeInvalidPassword, want: "This is an invalid password"},
		{name: "email_not_found", code: auth.CodeEmailNotFound, want: "This email has not been registered"},
		{name: "too_many_attempts", code: auth.CodeTooManyAttempts, want: "Too many attempts, please try again later"},
		{name: "user_disabled", code: auth.CodeUserDisabled, want: "This account has been disabled by an administrator."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			identity.EXPECT().SignIn(gomock.Any(), "user@example.com", "pw").
				Return("", &auth.Error{Code: tt.code})

			_, err := c.Login(context.Background(), "user@example.com", "pw")
			require.Error(t, err)

			var re *ReadableError
			require.ErrorAs(t, err, &re)
			require.Equal(t, tt.want, re.Reason)
		})
	}
}

func TestLogin_UserLookupError_Readable(t *testing.T) {
	t.Parallel()

	c, users, _, identity, ctrl := newClient(t)
	defer ctrl.Finish()

	identity.EXPECT().SignIn(gomock.Any(), "user@example.com", "secret123").
		Return("uid-42", nil)
	users.EXPECT().UserByID(gomock.Any(), "uid-42").Return(nil, errors.New("db down"))

	_, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.Error(t, err)
	require.True(t, IsReadable(err))
}

func TestUpdateUser_OK_And_Error(t *testing.T) {
	t.Parallel()

	c, users, _, _, ctrl := newClient(t)
	defer ctrl.Finish()

	user := &models.User{LocalID: "uid-1", FirstName: "Ada"}
	users.EXPECT().MergeUser(gomock.Any(), user).Return(nil)
	require.NoError(t, c.UpdateUser(context.Background(), user))

	users.EXPECT().MergeUser(gomock.Any(), user).Return(errors.New("db down"))
	err := c.UpdateUser(context.Background(), user)
	require.Error(t, err)
	require.True(t, IsReadable(err))
}

// TestReadable_UnknownCause_GenericText — неизвестные причины получают
// обобщённый текст, исходная причина остаётся в цепочке.
func TestReadable_UnknownCause_GenericText(t *testing.T) {
	t.Parallel()

	cause := errors.New("weird failure")
	re := readable(cause)
	require.Equal(t, genericReadable, re.Reason)
	require.Equal(t, genericReadable, re.Error())
	require.ErrorIs(t, re, cause)
}

// TestReadable_UnknownIdentityCode_GenericText — код вне таблицы тоже
// сводится к обобщённому тексту.
func TestReadable_UnknownIdentityCode_GenericText(t *testing.T) {
	t.Parallel()

	re := readable(&auth.Error{Code: auth.Code("SOMETHING_NEW")})
	require.Equal(t, genericReadable, re.Reason)
}
