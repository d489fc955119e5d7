package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdfdiff/internal/app"
	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockConfigLoader
	comparator *mocks.MockComparator
	configured *mocks.MockComparator
	setup      *mocks.MockSetupProvider
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		comparator: mocks.NewMockComparator(ctrl),
		configured: mocks.NewMockComparator(ctrl),
		setup:      mocks.NewMockSetupProvider(ctrl),
	}
	f.app = app.New(f.loader, f.comparator, f.setup, mocks.NewMockLogger(ctrl))
	return f
}

func projectSettings() *domain.Settings {
	settings := domain.DefaultSettings()
	settings.Execution.Timeout = 90 * time.Second
	settings.Execution.InterpreterPath = "/project/.venv/bin/python"
	settings.Compare.Module = "diff_pdf_visually"
	return settings
}

func TestApp_Compare_ByPath(t *testing.T) {
	f := newFixture(t)
	settings := projectSettings()

	f.loader.EXPECT().Load(domain.ConfigFileName).Return(settings, nil)
	f.comparator.EXPECT().WithSettings(settings.Compare).Return(f.configured)

	wantOpts := domain.ExecutionOptions{
		InterpreterPath: "/project/.venv/bin/python",
		Timeout:         10 * time.Second,
	}
	want := domain.NoDifferences("No differences found")
	f.configured.EXPECT().
		ComparePaths(gomock.Any(), "a.pdf", "b.pdf", domain.DefaultReportPath, wantOpts).
		Return(want, nil)

	res, err := f.app.Compare(context.Background(), app.CompareRequest{
		PathA:   "a.pdf",
		PathB:   "b.pdf",
		Options: domain.ExecutionOptions{Timeout: 10 * time.Second},
	})
	require.NoError(t, err)
	assert.Same(t, want, res)
}

func TestApp_Compare_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("custom.yaml").Return(nil, zerr.Wrap(domain.ErrConfigParseFailed, "line 1"))

	_, err := f.app.Compare(context.Background(), app.CompareRequest{PathA: "a", PathB: "b", ConfigPath: "custom.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Compare_InMemoryWritesReport(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, os.WriteFile(a, []byte("first"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(b, []byte("second"), domain.PrivateFilePerm))
	out := filepath.Join(dir, "reports", "diff.pdf")

	pages := 3
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	f.comparator.EXPECT().WithSettings(gomock.Any()).Return(f.configured)
	f.configured.EXPECT().
		CompareBuffers(gomock.Any(), []byte("first"), []byte("second"), gomock.Any()).
		Return(&domain.ComparisonResult{Success: true, PageCount: &pages, ReportBuffer: []byte("REPORT")}, nil)

	res, err := f.app.Compare(context.Background(), app.CompareRequest{PathA: a, PathB: b, Output: out, InMemory: true})
	require.NoError(t, err)

	assert.Equal(t, out, res.ReportPath)
	assert.Nil(t, res.ReportBuffer)
	assert.Equal(t, 3, *res.PageCount)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("REPORT"), written)
}

func TestApp_Compare_InMemoryNoDifferences(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	require.NoError(t, os.WriteFile(a, []byte("same"), domain.PrivateFilePerm))
	out := filepath.Join(dir, "diff.pdf")

	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	f.comparator.EXPECT().WithSettings(gomock.Any()).Return(f.configured)
	f.configured.EXPECT().CompareBuffers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.NoDifferences(""), nil)

	res, err := f.app.Compare(context.Background(), app.CompareRequest{PathA: a, PathB: a, Output: out, InMemory: true})
	require.NoError(t, err)

	assert.False(t, res.HasDifferences())
	assert.NoFileExists(t, out)
}

func TestApp_Compare_InMemoryMissingInput(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	f.comparator.EXPECT().WithSettings(gomock.Any()).Return(f.configured)

	_, err := f.app.Compare(context.Background(), app.CompareRequest{PathA: missing, PathB: missing, InMemory: true})
	require.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Contains(t, err.Error(), missing)
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t)
	status := domain.SetupStatus{InterpreterAvailable: true, InterpreterPath: "/usr/bin/python3", Source: domain.SourcePath}
	f.setup.EXPECT().Status().Return(status)

	assert.Equal(t, status, f.app.Status())
}

func TestApp_LoadSettings_DefaultPath(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(domain.ConfigFileName).Return(domain.DefaultSettings(), nil)

	settings, err := f.app.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

type switchingLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *switchingLogger) SetJSON(enable bool) { l.json = enable }

func TestApp_Compare_ConfigEnablesJSONLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	comparator := mocks.NewMockComparator(ctrl)
	log := &switchingLogger{MockLogger: mocks.NewMockLogger(ctrl)}
	a := app.New(loader, comparator, mocks.NewMockSetupProvider(ctrl), log)

	settings := domain.DefaultSettings()
	settings.LogJSON = true
	loader.EXPECT().Load(domain.ConfigFileName).Return(settings, nil)
	comparator.EXPECT().WithSettings(settings.Compare).Return(comparator)
	comparator.EXPECT().
		ComparePaths(gomock.Any(), "a.pdf", "b.pdf", domain.DefaultReportPath, settings.Execution).
		Return(domain.NoDifferences(""), nil)

	_, err := a.Compare(context.Background(), app.CompareRequest{PathA: "a.pdf", PathB: "b.pdf"})
	require.NoError(t, err)
	assert.True(t, log.json)
}

func TestApp_UseJSONLogs_IgnoresFixedLoggers(t *testing.T) {
	f := newFixture(t)
	assert.NotPanics(t, func() { f.app.UseJSONLogs(true) })
}
