package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New("debug", "production")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	l = New("nonsense", "development")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := New("info", "production")
	base.SetOutput(&buf)

	ctx := WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", RequestID(ctx))

	FromContext(ctx, base).With("owner", "alice").LogError("update", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rid-1", entry["request_id"])
	assert.Equal(t, "alice", entry["owner"])
	assert.Equal(t, "update", entry["operation"])
	assert.Equal(t, "boom", entry["error"])

	buf.Reset()
	FromContext(context.Background(), base).LogInfo("find", "ok")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["request_id"])
}
