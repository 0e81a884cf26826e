package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")
	l.Info("hidden")
	l.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "DEBUG", "JSON").Debug("sampled", "curves", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "sampled", rec["msg"])
	require.Equal(t, "DEBUG", rec["level"])
	require.EqualValues(t, 3, rec["curves"])
}
