package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_RoundTrip(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	storedName, size, err := store.Store("report.txt", strings.NewReader("hello helpdesk"))
	require.NoError(t, err)
	assert.Equal(t, int64(14), size)
	assert.Contains(t, storedName, "report.txt")

	f, err := store.Open(storedName)
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello helpdesk", string(content))
}

func TestLocalFileStore_StoredNamesDoNotCollide(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	first, _, err := store.Store("log.txt", strings.NewReader("a"))
	require.NoError(t, err)
	second, _, err := store.Store("log.txt", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalFileStore_Remove(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	storedName, _, err := store.Store("gone.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(storedName))

	_, err = store.Open(storedName)
	assert.Error(t, err)

	t.Run("removing twice is not an error", func(t *testing.T) {
		assert.NoError(t, store.Remove(storedName))
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name kept", "report.pdf", "report.pdf"},
		{"path components stripped", "../../etc/passwd", "passwd"},
		{"unsafe characters replaced", "my file (1).txt", "my_file__1_.txt"},
		{"empty name falls back", "", "upload"},
		{"dot dot falls back", "..", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
		})
	}
}
