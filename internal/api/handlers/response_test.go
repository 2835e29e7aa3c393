package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondNotFound(w, "не найдено")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"не найдено"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Table string `json:"table"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"table":"7"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "7", v.Table)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"table":`))
	assert.Error(t, DecodeJSON(r, &v))
}
