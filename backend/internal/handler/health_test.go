package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itchan-dev/agora/shared/config"
	"github.com/stretchr/testify/assert"
)

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func TestHealth(t *testing.T) {
	h := &Handler{cfg: &config.Config{}, health: &MockHealthChecker{}}
	rr := httptest.NewRecorder()

	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestReady(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
	}{
		{name: "storage up", wantCode: http.StatusOK},
		{name: "connection refused", pingErr: errors.New("dial tcp: connection refused"), wantCode: http.StatusServiceUnavailable},
		{name: "ping timeout", pingErr: context.DeadlineExceeded, wantCode: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hadDeadline bool
			h := &Handler{cfg: &config.Config{}, health: &MockHealthChecker{
				PingFunc: func(ctx context.Context) error {
					_, hadDeadline = ctx.Deadline()
					return tt.pingErr
				},
			}}
			rr := httptest.NewRecorder()

			h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.True(t, hadDeadline)
			if tt.pingErr == nil {
				assert.JSONEq(t, `{"status":"ready"}`, rr.Body.String())
			} else {
				// the cause stays in the log
				assert.NotContains(t, rr.Body.String(), tt.pingErr.Error())
			}
		})
	}
}
