package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ok         bool
		wantFields map[string]string
	}{
		{name: "valid", body: `{"email":"a@b.in","password":"x"}`, ok: true},
		{name: "empty", body: ``},
		{name: "unknown field", body: `{"email":"a@b.in","password":"x","admin":true}`},
		{
			name:       "rules",
			body:       `{"email":"nope"}`,
			wantFields: map[string]string{"email": "failed email", "password": "failed required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst loginBody
			ok := DecodeAndValidate(w, r, &dst)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				return
			}
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, resp.Fields)
			}
		})
	}
}

func TestRespondFile(t *testing.T) {
	w := httptest.NewRecorder()

	RespondFile(w, "bookings.xlsx", "application/octet-stream", []byte("data"))

	assert.Equal(t, `attachment; filename="bookings.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", w.Header().Get("Content-Length"))
	assert.Equal(t, "data", w.Body.String())
}
