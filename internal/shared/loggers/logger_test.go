package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{
			name: "json",
			opts: Options{Level: "info"},
			check: func(t *testing.T, out string) {
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "scan finished", entry["message"])
				assert.Equal(t, "top_vendors", entry[FieldQuery])
				assert.Contains(t, entry, "time")
				assert.Contains(t, entry, "caller")
			},
		},
		{
			name: "console",
			opts: Options{Level: "debug", Format: FormatConsole},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "scan finished")
				assert.Contains(t, out, "query=top_vendors")
			},
		},
		{
			name:  "below level",
			opts:  Options{Level: "warn"},
			check: func(t *testing.T, out string) { assert.Empty(t, out) },
		},
		{name: "bad level", opts: Options{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.opts.Writer = &buf
			logger, err := NewWithOptions(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Info().Str(FieldQuery, "top_vendors").Msg("scan finished")
			tt.check(t, buf.String())
		})
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithOptions(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	ctx := logger.With().Str(FieldRunID, "01HZY3J5Q2Z6F2K8V9W1X7T4M0").Logger().WithContext(context.Background())
	Ctx(ctx).Info().Msg("report completed")
	assert.Contains(t, buf.String(), `"run_id":"01HZY3J5Q2Z6F2K8V9W1X7T4M0"`)

	// no logger in context: disabled, never nil
	Ctx(context.Background()).Info().Msg("dropped")
}
