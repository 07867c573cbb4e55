package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrInvalidCustomerID, wantStatus: http.StatusBadRequest},
		{code: ErrDatasetUnavailable, wantStatus: http.StatusServiceUnavailable},
		{code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{code: ErrInsufficientPrivilege, wantStatus: http.StatusForbidden},
		{code: ErrRouteNotFound, wantStatus: http.StatusNotFound},
		{code: ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed},
		{code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
