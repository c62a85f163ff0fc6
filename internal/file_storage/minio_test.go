package filestorage

import (
	"testing"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinioClient(t *testing.T) {
	_, err := NewMinioClient(&config.MinioConfig{})
	assert.ErrorIs(t, err, ErrStorageDisabled)

	client, err := NewMinioClient(&config.MinioConfig{
		ENDPOINT:   "localhost:9000",
		ACCESS_KEY: "minio",
		SECRET_KEY: "minio123",
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
}
