package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-photo-gallery/internal/config"
	"github.com/pribylovaa/go-photo-gallery/internal/models"
	"github.com/pribylovaa/go-photo-gallery/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для загрузок;
// — проверяют:
//    New: успешное подключение, endpoint без схемы и ошибку при отсутствии бакета;
//    Save: ключ "<prefix>/<id>.<ext>", содержимое и content-type объекта,
//    валидации по типу/размеру/аргументам.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*FilesStorage, func(), string) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "gallery"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:     endpoint,
			RootUser:     rootUser,
			RootPassword: rootPassword,
			Bucket:       bucket,
			Prefix:       "uploads",
		},
		Uploads: config.UploadsConfig{
			MaxSizeBytes:        1 << 20, // 1 MiB
			AllowedContentTypes: []string{"image/jpeg", "image/png", "image/webp"},
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}, ""
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup, endpoint
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _, _ = startMinio(t, false)
}

func TestIntegration_New_EndpointWithoutScheme_OK(t *testing.T) {
	st, cleanup, endpoint := startMinio(t, true)
	defer cleanup()
	_ = st

	u, err := url.Parse(endpoint)
	require.NoError(t, err)

	cfg2 := &config.Config{
		S3: config.S3Config{
			Endpoint:     u.Host,
			RootUser:     "root",
			RootPassword: "rootpass",
			Bucket:       "gallery",
			Prefix:       "uploads",
		},
		Uploads: config.UploadsConfig{
			MaxSizeBytes:        1 << 20,
			AllowedContentTypes: []string{"image/png"},
		},
	}

	s2, err := New(context.Background(), cfg2)
	require.NoError(t, err)
	_ = s2
}

func TestIntegration_Save_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	id := uuid.NewString()
	body := bytes.Repeat([]byte{0x42}, 16)

	key, err := st.Save(context.Background(), id, models.FileUpload{
		Filename:    "sunset.jpg",
		Size:        int64(len(body)),
		ContentType: "image/jpeg",
		Content:     bytes.NewReader(body),
	})
	require.NoError(t, err)
	require.Equal(t, "uploads/"+id+".jpg", key)

	// Объект лежит под возвращённым ключом с исходным содержимым и типом.
	obj, err := st.client.GetObject(context.Background(), "gallery", key, mclient.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	got, err := io.ReadAll(obj)
	require.NoError(t, err)
	require.Equal(t, body, got)

	info, err := obj.Stat()
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", info.ContentType)
}

func TestIntegration_Save_ExtensionsByContentType(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	tests := []struct {
		contentType string
		wantExt     string
	}{
		{contentType: "image/jpeg", wantExt: ".jpg"},
		{contentType: "image/png", wantExt: ".png"},
		{contentType: "image/webp", wantExt: ".webp"},
	}

	for _, tt := range tests {
		id := uuid.NewString()
		key, err := st.Save(context.Background(), id, models.FileUpload{
			Filename:    "f",
			Size:        1,
			ContentType: tt.contentType,
			Content:     strings.NewReader("x"),
		})
		require.NoError(t, err)
		require.Equal(t, "uploads/"+id+tt.wantExt, key)
	}
}

func TestIntegration_Save_InvalidArgs(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	ok := models.FileUpload{
		Filename:    "f.png",
		Size:        1,
		ContentType: "image/png",
		Content:     strings.NewReader("x"),
	}

	// Пустой идентификатор.
	_, err := st.Save(ctx, "  ", ok)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Нет содержимого.
	_, err = st.Save(ctx, uuid.NewString(), models.FileUpload{
		Filename: "f.png", Size: 1, ContentType: "image/png",
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Неположительный размер.
	_, err = st.Save(ctx, uuid.NewString(), models.FileUpload{
		Filename: "f.png", Size: 0, ContentType: "image/png", Content: strings.NewReader(""),
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Размер выше лимита.
	_, err = st.Save(ctx, uuid.NewString(), models.FileUpload{
		Filename: "f.png", Size: st.cfg.Uploads.MaxSizeBytes + 1, ContentType: "image/png", Content: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	// Тип вне allow-list.
	_, err = st.Save(ctx, uuid.NewString(), models.FileUpload{
		Filename: "f.gif", Size: 1, ContentType: "image/gif", Content: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}
