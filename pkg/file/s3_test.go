package file_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tboywixxy/yorkshire-global/pkg/file"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func newS3Store(t *testing.T, client *MockS3Client, cfg file.S3Config, opts ...file.S3Option) *file.S3Storage {
	t.Helper()

	if cfg.Bucket == "" {
		cfg.Bucket = "assets"
	}
	if cfg.Region == "" {
		cfg.Region = "eu-west-2"
	}
	s, err := file.NewS3Storage(context.Background(), cfg, append(opts, file.WithS3Client(client))...)
	require.NoError(t, err)
	return s
}

func keyIs(key string) any {
	return mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Bucket) == "assets" && aws.ToString(in.Key) == key
	})
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	_, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "eu-west-2"})
	require.ErrorIs(t, err, file.ErrInvalidConfig)

	_, err = file.NewS3Storage(context.Background(), file.S3Config{Bucket: "b", Region: "r", Prefix: "../x"}, file.WithS3Client(&MockS3Client{}))
	require.ErrorIs(t, err, file.ErrInvalidConfig)
}

func TestS3Storage_Read(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reads object with prefix", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, keyIs("static/email/yorkshire-logo.png"), mock.Anything).
			Return(&s3.GetObjectOutput{
				Body:          io.NopCloser(bytes.NewReader(pngHeader)),
				ContentType:   aws.String("binary/octet-stream"),
				ContentLength: aws.Int64(int64(len(pngHeader))),
			}, nil)

		s := newS3Store(t, client, file.S3Config{Prefix: "/static/"})
		a, err := s.Read(ctx, "email/yorkshire-logo.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", a.ContentType)
		assert.Equal(t, "yorkshire-logo.png", a.Filename)
		assert.Equal(t, pngHeader, a.Data)
		client.AssertExpectations(t)
	})

	t.Run("keeps stored content type", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, keyIs("logo"), mock.Anything).
			Return(&s3.GetObjectOutput{
				Body:        io.NopCloser(bytes.NewReader(pngHeader)),
				ContentType: aws.String("image/png"),
			}, nil)

		a, err := newS3Store(t, client, file.S3Config{}).Read(ctx, "logo")
		require.NoError(t, err)
		assert.Equal(t, "image/png", a.ContentType)
	})

	t.Run("too large by header", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(&s3.GetObjectOutput{
				Body:          io.NopCloser(bytes.NewReader(pngHeader)),
				ContentLength: aws.Int64(1 << 30),
			}, nil)

		_, err := newS3Store(t, client, file.S3Config{}).Read(ctx, "big.png")
		require.ErrorIs(t, err, file.ErrFileTooLarge)
	})

	t.Run("too large by body", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(pngHeader))}, nil)

		_, err := newS3Store(t, client, file.S3Config{}, file.WithS3MaxSize(4)).Read(ctx, "big.png")
		require.ErrorIs(t, err, file.ErrFileTooLarge)
	})

	t.Run("invalid path skips the client", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		_, err := newS3Store(t, client, file.S3Config{}).Read(ctx, "../secret")
		require.ErrorIs(t, err, file.ErrInvalidPath)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything)
	})

	errCases := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", &types.NoSuchKey{}, file.ErrFileNotFound},
		{"no such bucket", &types.NoSuchBucket{}, file.ErrBucketNotFound},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, file.ErrAccessDenied},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, file.ErrServiceUnavailable},
		{"request timeout", &smithy.GenericAPIError{Code: "RequestTimeout"}, file.ErrRequestTimeout},
		{"deadline", context.DeadlineExceeded, file.ErrOperationTimeout},
		{"canceled", context.Canceled, file.ErrOperationCanceled},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := &MockS3Client{}
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)

			_, err := newS3Store(t, client, file.S3Config{}).Read(ctx, "email/yorkshire-logo.png")
			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("unknown api error keeps code", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		apiErr := &smithy.GenericAPIError{Code: "Teapot"}
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, apiErr)

		_, err := newS3Store(t, client, file.S3Config{}).Read(ctx, "x.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Teapot")
		var target smithy.APIError
		assert.True(t, errors.As(err, &target))
	})
}

func TestS3Storage_Exists(t *testing.T) {
	t.Parallel()

	client := &MockS3Client{}
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return aws.ToString(in.Key) == "email/yorkshire-logo.png"
	}), mock.Anything).Return(&s3.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, &types.NotFound{})

	s := newS3Store(t, client, file.S3Config{})
	assert.True(t, s.Exists(context.Background(), "email/yorkshire-logo.png"))
	assert.False(t, s.Exists(context.Background(), "email/missing.png"))
	assert.False(t, s.Exists(context.Background(), ".."))
}
