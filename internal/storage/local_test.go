package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain image name", input: "photo.jpg", expected: "photo.jpg"},
		{name: "uppercase extension", input: "photo.JPG", expected: "photo.JPG"},
		{name: "path traversal is stripped", input: "../../etc/passwd.png", expected: "passwd.png"},
		{name: "windows path is stripped", input: `C:\Users\me\photo.png`, expected: "photo.png"},
		{name: "disallowed extension", input: "script.sh", wantErr: true},
		{name: "no extension", input: "README", wantErr: true},
		{name: "empty name", input: "", wantErr: true},
		{name: "dot dot only", input: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFilename(tt.input)
			if tt.wantErr {
				assert.Equal(t, ErrInvalidFile, err)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func multipartFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	header := multipartFile(t, "house.png", "fake image bytes")

	url, err := store.Save(header, "properties")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/properties/"))
	assert.True(t, strings.HasSuffix(url, "_house.png"))

	stored := filepath.Join(dir, "properties", filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStorage_Save_RejectsBadNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := multipartFile(t, "payload.exe", "malware")

	url, err := store.Save(header, "profiles")
	assert.Equal(t, ErrInvalidFile, err)
	assert.Empty(t, url)
}
