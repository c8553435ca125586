package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStorage struct {
	err error
}

func (s stubStorage) Check() error {
	return s.err
}

func TestNewHandler(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		storageErr     error
		path           string
		expectedStatus int
	}{
		{name: "live", path: "/live", expectedStatus: http.StatusOK},
		{name: "ready", path: "/ready", expectedStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("connection refused"), path: "/ready", expectedStatus: http.StatusServiceUnavailable},
		{name: "storage unavailable", storageErr: errors.New("read-only"), path: "/ready", expectedStatus: http.StatusServiceUnavailable},
		{name: "storage unavailable does not affect liveness", storageErr: errors.New("read-only"), path: "/live", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()

			if tt.path == "/ready" {
				ping := mock.ExpectPing()
				if tt.pingErr != nil {
					ping.WillReturnError(tt.pingErr)
				}
			}

			h := NewHandler(db, stubStorage{err: tt.storageErr}, prometheus.NewRegistry())

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewHandler_WithoutRegistry(t *testing.T) {
	h := NewHandler(nil, nil, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready?full=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
