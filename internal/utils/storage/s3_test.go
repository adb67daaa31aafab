package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (r *recordingPutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	r.input = params
	r.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, r.err
}

func TestUploadFile(t *testing.T) {
	putter := &recordingPutter{}
	store := NewAwsS3WithClient(putter, "matrafl-exports", "eu-central-1")

	url, err := store.UploadFile(context.Background(), "exports/u1/2024-01-01-matrafl.json", []byte(`{"a":1}`), "application/json")

	require.NoError(t, err)
	assert.Equal(t, "https://matrafl-exports.s3.eu-central-1.amazonaws.com/exports/u1/2024-01-01-matrafl.json", url)
	assert.Equal(t, "matrafl-exports", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "application/json", aws.ToString(putter.input.ContentType))
	assert.Equal(t, int64(7), aws.ToInt64(putter.input.ContentLength))
	assert.Equal(t, `{"a":1}`, string(putter.body))
}

func TestUploadFileError(t *testing.T) {
	putter := &recordingPutter{err: errors.New("denied")}
	store := NewAwsS3WithClient(putter, "b", "r")

	_, err := store.UploadFile(context.Background(), "k", nil, "application/json")

	assert.ErrorContains(t, err, "denied")
}

func TestNewAwsS3RequiresBucket(t *testing.T) {
	_, err := NewAwsS3(context.Background())

	assert.ErrorIs(t, err, ErrBucketNotConfigured)
}
