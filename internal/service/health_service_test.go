package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/o-magnata69/back-end-api/internal/mocks"
	"github.com/o-magnata69/back-end-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		p := &mocks.MockPinger{}
		status := service.NewHealthService(p, discardLogger()).Check(context.Background())
		assert.Equal(t, service.DBStatusOK, status.DBStatus)
		assert.Equal(t, 1, p.Calls)
	})

	t.Run("failure text is reported", func(t *testing.T) {
		p := &mocks.MockPinger{Err: errors.New("connection refused")}
		status := service.NewHealthService(p, discardLogger()).Check(context.Background())
		assert.Equal(t, "connection refused", status.DBStatus)
	})
}
