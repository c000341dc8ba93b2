package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	put     *s3.PutObjectInput
	body    string
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = params
	return &s3.DeleteObjectOutput{}, nil
}

func TestCloudflareR2Uploader_PublicURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		key     string
		want    string
	}{
		{name: "host only", baseURL: "https://cdn.example.com", key: "tournaments/1/snapshot.json", want: "https://cdn.example.com/tournaments/1/snapshot.json"},
		{name: "base with path", baseURL: "https://cdn.example.com/public", key: "a.json", want: "https://cdn.example.com/public/a.json"},
		{name: "leading slash on key", baseURL: "https://cdn.example.com/public/", key: "/a.json", want: "https://cdn.example.com/public/a.json"},
		{name: "empty key", baseURL: "https://cdn.example.com", key: "", want: ""},
		{name: "no base", baseURL: "", key: "a.json", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &cloudflareR2Uploader{publicBaseURL: tt.baseURL}
			assert.Equal(t, tt.want, u.publicURL(tt.key))
		})
	}
}

func TestCloudflareR2Uploader_UploadAndDelete(t *testing.T) {
	store := &fakeObjectStore{}
	u := &cloudflareR2Uploader{s3Client: store, bucketName: "snapshots", publicBaseURL: "https://cdn.example.com"}

	res, err := u.Upload(context.Background(), "tournaments/3/snapshot.json", "application/json", strings.NewReader(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.ETag)
	assert.Equal(t, "https://cdn.example.com/tournaments/3/snapshot.json", res.Location)
	assert.Equal(t, "snapshots", aws.ToString(store.put.Bucket))
	assert.Equal(t, "application/json", aws.ToString(store.put.ContentType))
	assert.Equal(t, `{"ok":true}`, store.body)

	require.NoError(t, u.Delete(context.Background(), "tournaments/3/snapshot.json"))
	assert.Equal(t, "tournaments/3/snapshot.json", aws.ToString(store.deleted.Key))
}

func TestCloudflareR2Uploader_Errors(t *testing.T) {
	boom := errors.New("boom")
	u := &cloudflareR2Uploader{s3Client: &fakeObjectStore{err: boom}, bucketName: "b"}

	_, err := u.Upload(context.Background(), "k", "application/json", strings.NewReader("{}"))
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, u.Delete(context.Background(), "k"), boom)

	_, err = NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "a"})
	require.ErrorIs(t, err, ErrInvalidR2Config)
}
