package filestore

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestLocalSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "http://localhost:8080/uploads")

	fh := newFileHeader(t, "proposal.pdf", "dokumen proposal")
	filename, url, err := store.Save(fh)
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(filename, ".pdf"))
	require.Equal(t, "http://localhost:8080/uploads/"+filename, url)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	require.Equal(t, "dokumen proposal", string(data))
}

func TestLocalSaveUniqueNames(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "http://x")

	a, _, err := store.Save(newFileHeader(t, "bukti.jpg", "a"))
	require.NoError(t, err)
	b, _, err := store.Save(newFileHeader(t, "bukti.jpg", "b"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestUniqueNameKeepsExtension(t *testing.T) {
	require.True(t, strings.HasSuffix(UniqueName("foto sekolah.JPG"), ".JPG"))
	require.False(t, strings.Contains(UniqueName("noext"), "."))
}
