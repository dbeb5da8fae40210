package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	cfg := ConfigFromEnv()
	require.Equal(t, "info", cfg.Level)
	require.Equal(t, "console", cfg.Format)

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	cfg = ConfigFromEnv()
	require.Equal(t, "debug", cfg.Level)
	require.Equal(t, "json", cfg.Format)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{name: "nil uses defaults", cfg: nil},
		{name: "console debug", cfg: &Config{Level: "debug", Format: "console"}},
		{name: "json warn", cfg: &Config{Level: "warn", Format: "json"}},
		{name: "bad level", cfg: &Config{Level: "loud", Format: "console"}, wantErr: true},
		{name: "bad format", cfg: &Config{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Build(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, l)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestPackageHelpersUseInstalledLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Debug("phase started", zap.String("phase", "explicit"))
	Info("phase finished")
	Warn("slow phase")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, "phase started", entries[0].Message)
	require.Equal(t, "explicit", entries[0].ContextMap()["phase"])
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestConsoleFormatKeepsProductionSemantics(t *testing.T) {
	l, err := Build(&Config{Level: "error", Format: "console"})
	require.NoError(t, err)
	require.NotPanics(t, func() { l.DPanic("dpanic in console format") })
}
