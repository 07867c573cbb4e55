package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	previous := std.Out
	std.SetOutput(buf)
	t.Cleanup(func() { std.SetOutput(previous) })

	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"customer_id": "42", "user_agent": "curl"}).Info("dashboard: teste")

	assert.Contains(t, buf.String(), "customer_id=42")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("user_agent", "curl").Info("dashboard: teste")

	assert.Contains(t, buf.String(), "user_agent")
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("com contexto")

	assert.Contains(t, buf.String(), id)
}
