package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	require.ErrorIs(t, ErrNotFound.WithTips("proposal tidak ditemukan"), ErrNotFound)
	require.NotErrorIs(t, ErrNotFound, ErrDatabase)
}

func TestWithOriginKeepsChain(t *testing.T) {
	cause := errors.New("boom")
	err := ErrDatabase.WithOrigin(cause)
	require.ErrorIs(t, err, ErrDatabase)
	require.Equal(t, ErrDatabase.Code, err.Code)
	require.NotEmpty(t, err.Origin)
	require.NotNil(t, err.StackTrace())
}

func TestFailWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, ErrNotFound.Code, body.Code)
	require.Equal(t, ErrNotFound.Message, body.Msg)
}

func TestFailWrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, errors.New("raw failure"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, ErrInternal.Code, body.Code)
	// the raw message must not reach the client
	require.Equal(t, ErrInternal.Message, body.Msg)
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"k": "v"})

	require.Equal(t, http.StatusOK, w.Code)
	var body ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, int32(200), body.Code)
	require.NotNil(t, body.Data)
}
