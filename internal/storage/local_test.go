package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) Storage {
	t.Helper()

	store, err := NewLocalStorage(Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	store := newLocal(t)
	ctx := context.Background()

	err := store.Save(ctx, "users/u1/resume.pdf", strings.NewReader("pdf bytes"), "application/pdf")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "users/u1/resume.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Get(ctx, "users/u1/resume.pdf")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))

	url, err := store.GetURL(ctx, "users/u1/resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/users/u1/resume.pdf", url)

	require.NoError(t, store.Delete(ctx, "users/u1/resume.pdf"))
	exists, err = store.Exists(ctx, "users/u1/resume.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_MissingFile(t *testing.T) {
	store := newLocal(t)

	exists, err := store.Exists(context.Background(), "nope/missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Get(context.Background(), "nope/missing.pdf")
	assert.Error(t, err)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
