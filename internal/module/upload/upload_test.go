package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doUpload(t *testing.T, content []byte) response.ResponseBody {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "bukti.jpg")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/upload", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	c.Set("payload", &jwt.Claims{Payload: jwt.Payload{UserID: 1, RoleID: 1}})

	Store(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestStoreRejectsOversizedWithoutPersisting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := config.Get()
	cfg.Storage.Home = dir
	cfg.Storage.MaxSize = 8
	(&ModuleUpload{}).Init()

	resp := doUpload(t, []byte("more than eight bytes"))
	test.ErrorEqual(t, response.ErrPayloadTooLarge, resp)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestStoreRejectsMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Get()
	cfg.Storage.Home = t.TempDir()
	cfg.Storage.MaxSize = 1 << 20
	(&ModuleUpload{}).Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/upload", nil)
	c.Set("payload", &jwt.Claims{Payload: jwt.Payload{UserID: 1, RoleID: 1}})

	Store(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestStorePersistsAndRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)
	test.SetupDB(t)
	dir := t.TempDir()
	cfg := config.Get()
	cfg.Storage.Home = dir
	cfg.Storage.MaxSize = 1 << 20
	cfg.Storage.BaseURL = "http://localhost:8080/uploads"
	(&ModuleUpload{}).Init()

	resp := doUpload(t, []byte("isi berkas"))
	test.NoError(t, resp)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
