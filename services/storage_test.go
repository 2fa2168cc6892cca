package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageGet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tags"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tags", "base.jpg"), []byte("jpeg-bytes"), 0644))

	store := NewLocalStorage(dir)
	assert.True(t, store.IsConfigured())

	rc, contentType, err := store.Get(context.Background(), "tags/base.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", contentType)

	t.Run("Missing", func(t *testing.T) {
		_, _, err := store.Get(context.Background(), "tags/none.png")
		assert.Error(t, err)
	})

	t.Run("EscapesBaseDir", func(t *testing.T) {
		_, _, err := store.Get(context.Background(), "../../etc/passwd")
		assert.Error(t, err)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, _, err := store.Get(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidAssetKey)
	})
}

func TestLocalStoragePublicURL(t *testing.T) {
	tests := []struct {
		name     string
		baseDir  string
		key      string
		expected string
	}{
		{name: "BelowStaticRoot", baseDir: "static/assets", key: "tags/base.jpg", expected: "/static/assets/tags/base.jpg"},
		{name: "UncleanDir", baseDir: "./static/assets/", key: "base.jpg", expected: "/static/assets/base.jpg"},
		{name: "StaticRootItself", baseDir: "static", key: "base.jpg", expected: "/static/base.jpg"},
		{name: "KeyCannotClimb", baseDir: "static/assets", key: "../../config.env", expected: "/static/assets/config.env"},
		{name: "AbsoluteDir", baseDir: "/var/assets", key: "base.jpg", expected: ""},
		{name: "OutsideStaticRoot", baseDir: "assets", key: "base.jpg", expected: ""},
		{name: "SiblingOfStaticRoot", baseDir: "static/../private", key: "base.jpg", expected: ""},
		{name: "EmptyKey", baseDir: "static/assets", key: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewLocalStorage(tt.baseDir).GetPublicURL(tt.key))
		})
	}
}

func TestR2PublicURL(t *testing.T) {
	r2 := &R2Storage{publicURL: "https://cdn.example.com/"}
	assert.Equal(t, "https://cdn.example.com/tags/base.jpg", r2.GetPublicURL("tags/base.jpg"))

	r2.publicURL = ""
	assert.Empty(t, r2.GetPublicURL("tags/base.jpg"))
	assert.False(t, r2.IsConfigured())
}

func TestAssetKey(t *testing.T) {
	key, ok := AssetKey("asset://tags/base.jpg")
	assert.True(t, ok)
	assert.Equal(t, "tags/base.jpg", key)

	_, ok = AssetKey("asset://")
	assert.False(t, ok)
	_, ok = AssetKey("https://example.com/base.jpg")
	assert.False(t, ok)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", contentTypeFor("a.PNG"))
	assert.Equal(t, "image/jpeg", contentTypeFor("a.jpeg"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("a.bin"))
}
