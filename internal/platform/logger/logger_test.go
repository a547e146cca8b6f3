package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infatoz/sahayak-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		level       string
		wantDebug   bool
		wantWarning bool
	}{
		{level: "debug", wantDebug: true, wantWarning: true},
		{level: "info", wantDebug: false, wantWarning: true},
		{level: "warn", wantDebug: false, wantWarning: true},
		{level: "error", wantDebug: false, wantWarning: false},
		{level: "bogus", wantDebug: false, wantWarning: true}, // falls back to info
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			log := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tc.wantDebug, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.wantWarning, log.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestSetupInstallsDefault(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})
	assert.Same(t, log, slog.Default())
}
