package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), "level %q", raw)
	}
}

func TestSetRawLevel(t *testing.T) {
	SetRawLevel("error")
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelError))

	SetRawLevel("debug")
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelDebug))
}
