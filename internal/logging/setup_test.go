package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SlogToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Debug(context.Background(), "hello", "k", "v")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNew_UnknownLevelMeansInfo(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Options{Level: "chatty", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Debug(context.Background(), "dropped")
	log.Info(context.Background(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_ZapToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log, closer, err := New(Options{Backend: "zap", File: path})
	require.NoError(t, err)

	log.Info(context.Background(), "to file", "n", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, _, err := New(Options{Backend: "logrus"})
	require.Error(t, err)
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	ctx := context.Background()
	l.Debug(ctx, "x")
	l.With("a", 1).Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
}
