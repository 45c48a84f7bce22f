package mobile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerServesAPI(t *testing.T) {
	h, err := newHandler("standard")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/new_game", strings.NewReader("")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"game_id"`)
}

func TestNewHandlerRejectsUnknownRuleset(t *testing.T) {
	_, err := newHandler("chess")
	assert.Error(t, err)
}

func TestStartServerRejectsUnknownRuleset(t *testing.T) {
	assert.Error(t, StartServer("chess", "0"))
}
