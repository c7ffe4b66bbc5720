package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolbox/core/storage"
	"github.com/dmitrymomot/toolbox/integration/storage/s3"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3aws.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3aws.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) DeleteObject(ctx context.Context, params *s3aws.DeleteObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3aws.DeleteObjectOutput), args.Error(1)
}

func newMirror(t *testing.T, client *MockS3Client, cfg s3.Config) *s3.Mirror {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "media"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	m, err := s3.New(context.Background(), cfg, s3.WithS3Client(client))
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires bucket and region", func(t *testing.T) {
		t.Parallel()

		_, err := s3.New(context.Background(), s3.Config{Bucket: "media"})
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)

		_, err = s3.New(context.Background(), s3.Config{Region: "eu-west-1"})
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
	})

	t.Run("accepts custom client", func(t *testing.T) {
		t.Parallel()

		m := newMirror(t, &MockS3Client{}, s3.Config{})
		assert.NotNil(t, m)
	})
}

func TestMirrorPut(t *testing.T) {
	t.Parallel()

	t.Run("uploads with content type and prefix", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		var body string
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
			if body == "" {
				data, _ := io.ReadAll(in.Body)
				body = string(data)
			}
			return *in.Bucket == "media" &&
				*in.Key == "prod/images/cats/cat.png" &&
				*in.ContentType == "image/png"
		})).Return(&s3aws.PutObjectOutput{}, nil)

		m := newMirror(t, client, s3.Config{KeyPrefix: "/prod/"})
		err := m.Put(context.Background(), "images/cats/cat.png", strings.NewReader("pixels"))
		require.NoError(t, err)
		assert.Equal(t, "pixels", body)
		client.AssertExpectations(t)
	})

	t.Run("falls back to octet-stream", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
			return *in.ContentType == "application/octet-stream"
		})).Return(&s3aws.PutObjectOutput{}, nil)

		m := newMirror(t, client, s3.Config{})
		require.NoError(t, m.Put(context.Background(), "files/blob", strings.NewReader("x")))
		client.AssertExpectations(t)
	})

	t.Run("rejects traversal keys", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		m := newMirror(t, client, s3.Config{})

		err := m.Put(context.Background(), "files/../secret", strings.NewReader("x"))
		assert.ErrorIs(t, err, storage.ErrInvalidPath)
		err = m.Put(context.Background(), "", strings.NewReader("x"))
		assert.ErrorIs(t, err, storage.ErrInvalidPath)
		err = m.Put(context.Background(), "..", strings.NewReader("x"))
		assert.ErrorIs(t, err, storage.ErrInvalidPath)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})

	t.Run("accepts dots inside names", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
			return *in.Key == "files/zips/export..zip"
		})).Return(&s3aws.PutObjectOutput{}, nil)

		m := newMirror(t, client, s3.Config{})
		require.NoError(t, m.Put(context.Background(), "files/zips/export..zip", strings.NewReader("x")))
		client.AssertExpectations(t)
	})

	t.Run("classifies api errors", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"})

		m := newMirror(t, client, s3.Config{})
		err := m.Put(context.Background(), "files/a.txt", strings.NewReader("x"))
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})
}

func TestMirrorDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing object", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3aws.HeadObjectInput) bool {
			return *in.Key == "files/a.zip"
		})).Return(&s3aws.HeadObjectOutput{}, nil)
		client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3aws.DeleteObjectInput) bool {
			return *in.Key == "files/a.zip"
		})).Return(&s3aws.DeleteObjectOutput{}, nil)

		m := newMirror(t, client, s3.Config{})
		require.NoError(t, m.Delete(context.Background(), "/files/a.zip"))
		client.AssertExpectations(t)
	})

	t.Run("missing object", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("HeadObject", mock.Anything, mock.Anything).
			Return(nil, &types.NotFound{})

		m := newMirror(t, client, s3.Config{})
		err := m.Delete(context.Background(), "files/none.txt")
		assert.ErrorIs(t, err, storage.ErrFileNotFound)
		client.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})

	t.Run("delete failure", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("HeadObject", mock.Anything, mock.Anything).Return(&s3aws.HeadObjectOutput{}, nil)
		client.On("DeleteObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "SlowDown"})

		m := newMirror(t, client, s3.Config{})
		err := m.Delete(context.Background(), "files/a.txt")
		assert.ErrorIs(t, err, storage.ErrServiceUnavailable)
	})
}

func TestMirrorExists(t *testing.T) {
	t.Parallel()

	client := &MockS3Client{}
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3aws.HeadObjectInput) bool {
		return *in.Key == "files/here.txt"
	})).Return(&s3aws.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3aws.HeadObjectInput) bool {
		return *in.Key == "files/gone.txt"
	})).Return(nil, &types.NoSuchKey{})
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3aws.HeadObjectInput) bool {
		return *in.Key == "files/slow.txt"
	})).Return(nil, context.DeadlineExceeded)

	m := newMirror(t, client, s3.Config{})
	ctx := context.Background()

	ok, err := m.Exists(ctx, "files/here.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Exists(ctx, "files/gone.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.Exists(ctx, "files/slow.txt")
	assert.ErrorIs(t, err, storage.ErrOperationTimeout)
}

func TestMirrorURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  s3.Config
		want string
	}{
		{
			name: "aws virtual hosted",
			cfg:  s3.Config{Bucket: "media", Region: "eu-west-1"},
			want: "https://media.s3.eu-west-1.amazonaws.com/images/a.png",
		},
		{
			name: "aws path style",
			cfg:  s3.Config{Bucket: "media", Region: "eu-west-1", ForcePathStyle: true},
			want: "https://s3.eu-west-1.amazonaws.com/media/images/a.png",
		},
		{
			name: "minio",
			cfg:  s3.Config{Bucket: "media", Region: "us-east-1", Endpoint: "http://localhost:9000/", ForcePathStyle: true},
			want: "http://localhost:9000/media/images/a.png",
		},
		{
			name: "spaces",
			cfg:  s3.Config{Bucket: "media", Region: "nyc3", Endpoint: "https://nyc3.digitaloceanspaces.com"},
			want: "https://media.nyc3.digitaloceanspaces.com/images/a.png",
		},
		{
			name: "cdn with prefix",
			cfg:  s3.Config{Bucket: "media", Region: "nyc3", BaseURL: "https://cdn.example.com/", KeyPrefix: "v1"},
			want: "https://cdn.example.com/v1/images/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMirror(t, &MockS3Client{}, tt.cfg)
			assert.Equal(t, tt.want, m.URL("/images/a.png"))
		})
	}
}

func TestMirrorWithMedia(t *testing.T) {
	t.Parallel()

	client := &MockS3Client{}
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
		return *in.Key == "files/docs/readme.txt"
	})).Return(&s3aws.PutObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.Anything).Return(nil, &types.NotFound{})

	mirror := newMirror(t, client, s3.Config{})
	root := t.TempDir()
	media, err := storage.New(storage.Config{ImagesDir: root + "/img", FilesDir: root + "/files"},
		storage.WithMirror(mirror))
	require.NoError(t, err)

	ctx := context.Background()
	path, err := media.StoreFile(ctx, strings.NewReader("read me"), "readme.txt", "docs", storage.WithTimestamp(false))
	require.NoError(t, err)

	// The object is already gone remotely; local removal still succeeds.
	require.NoError(t, media.Remove(ctx, path))
	client.AssertExpectations(t)
}

func TestClassifyWrapsUnknownErrors(t *testing.T) {
	t.Parallel()

	client := &MockS3Client{}
	boom := errors.New("dial tcp: refused")
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, boom)

	m := newMirror(t, client, s3.Config{})
	err := m.Put(context.Background(), "files/a.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, boom)
}
