package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string { return f.name }
func (f fakeChecker) Check(context.Context) error { return f.err }

func TestReady(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, NewService().Ready(ctx))
	assert.NoError(t, NewService(fakeChecker{name: "postgres"}).Ready(ctx))

	down := errors.New("connection refused")
	err := NewService(fakeChecker{name: "postgres"}, fakeChecker{name: "redis", err: down}).Ready(ctx)
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "redis: connection refused")
}

func TestReport(t *testing.T) {
	got := NewService(fakeChecker{name: "postgres"}, fakeChecker{name: "redis", err: errors.New("timeout")}).
		Report(context.Background())
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "timeout"}, got)
}
