package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		requestHeader  string
		expectedStatus int
		expectedError  string
	}{
		{"valid API key", "test-key", http.StatusOK, ""},
		{"missing API key header", "", http.StatusUnauthorized, "Missing X-API-Key header"},
		{"invalid API key", "wrong-key", http.StatusUnauthorized, "Invalid API key"},
		{"prefix of the key", "test", http.StatusUnauthorized, "Invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := apiKeyMiddleware("test-key")(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestHeader != "" {
				req.Header.Set("X-API-Key", tt.requestHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var response APIResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.False(t, response.Success)
				assert.Equal(t, tt.expectedError, response.Error)
			}
		})
	}
}

func TestSendSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	sendSuccess(w, map[string]string{"message": "test"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, map[string]interface{}{"message": "test"}, response.Data)
	assert.Empty(t, response.Error)
}

func TestSendJSON(t *testing.T) {
	w := httptest.NewRecorder()
	sendJSON(w, http.StatusCreated, []int{1, 2})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[1,2]}`, w.Body.String())
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
	}{
		{"bad request error", "Invalid request", http.StatusBadRequest},
		{"unauthorized error", "Not authorized", http.StatusUnauthorized},
		{"unprocessable error", "Bad record", http.StatusUnprocessableEntity},
		{"internal server error", "Server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			sendError(w, tt.message, tt.statusCode)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response APIResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Error)
			assert.Nil(t, response.Data)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := requestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/brew", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/brew", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, int64(15), fields["bytes"])
}
