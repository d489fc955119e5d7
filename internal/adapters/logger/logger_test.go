package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdfdiff/internal/adapters/logger"
	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.With("run_id", "run-1").Info("starting /usr/bin/python3 compare_pdf")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("page count unavailable")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "two level chain",
			err:        zerr.Wrap(errors.New("underlying cause"), "wrapped message"),
			goldenName: "error_chain_two",
		},
		{
			name: "comparison failure",
			err: zerr.With(
				zerr.Wrap(domain.ErrComparisonFailed, "comparison exited with code 2: usage: compare_pdf\nerror: bad file"),
				"run_id", "run-1",
			),
			goldenName: "error_comparison_failed",
		},
		{
			name:       "metadata",
			err:        zerr.With(zerr.Wrap(domain.ErrInputNotFound, "/tmp/a.pdf"), "path", "/tmp/a.pdf"),
			goldenName: "error_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(zerr.With(zerr.New("boom"), "path", "a.pdf"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	assert.Contains(t, failure, "error")

	lg.SetJSON(false)
	buf.Reset()
	lg.Warn("pretty again")
	assert.Equal(t, "! pretty again\n", buf.String())
}

func TestLogger_With(t *testing.T) {
	lg, buf := newTestLogger(t)

	run := lg.With("run_id", "0f3c9a2e-7b1d-4c55-9a0e-3c2b1d0e9f8a")
	run.With("exit_code", 0).With("duration", 42*time.Millisecond).Info("interpreter exited")

	g := goldie.New(t)
	g.Assert(t, "info_run_tag", buf.Bytes())

	buf.Reset()
	lg.Info("unrelated")
	assert.Equal(t, "unrelated\n", buf.String())
}

func TestLogger_With_FollowsFormatSwitch(t *testing.T) {
	lg, buf := newTestLogger(t)
	run := lg.With("run_id", "run-7")

	lg.SetJSON(true)
	run.Info("starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "starting", entry["msg"])
	assert.Equal(t, "run-7", entry["run_id"])
}

func TestLogger_Error_JSONIncludesChainMetadata(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(
		zerr.With(zerr.Wrap(domain.ErrComparisonFailed, "comparison exited with code 3"), "exit_code", 3),
		"run_id", "run-9",
	)
	lg.With("path", "/work/a.pdf").Error(err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "operation failed", entry["msg"])
	assert.Contains(t, entry["error"], "comparison failed")
	assert.InDelta(t, 3, entry["exit_code"], 0)
	assert.Equal(t, "run-9", entry["run_id"])
	assert.Equal(t, "/work/a.pdf", entry["path"])
}
