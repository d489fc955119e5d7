// Package app implements the application layer for pdfdiff.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	comparator   ports.Comparator
	setup        ports.SetupProvider
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	comparator ports.Comparator,
	setup ports.SetupProvider,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		comparator:   comparator,
		setup:        setup,
		logger:       log,
	}
}

// CompareRequest describes a single comparison requested by the CLI.
type CompareRequest struct {
	PathA string
	PathB string
	// Output is where a report is written. Empty means domain.DefaultReportPath.
	Output string
	// ConfigPath is the project configuration file. Empty means domain.ConfigFileName.
	ConfigPath string
	// Options override the configured execution options.
	Options domain.ExecutionOptions
	// InMemory reads both inputs and compares them through a staging directory.
	InMemory bool
}

// LoadSettings loads the project configuration at path.
func (a *App) LoadSettings(path string) (*domain.Settings, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	settings, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

// Compare runs one comparison with defaults, configuration and request options
// applied in that order. A report, if any, ends up at the request's output path.
func (a *App) Compare(ctx context.Context, req CompareRequest) (*domain.ComparisonResult, error) {
	settings, err := a.LoadSettings(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	if settings.LogJSON {
		a.UseJSONLogs(true)
	}

	opts := settings.Execution.Merge(req.Options)
	comparator := a.comparator.WithSettings(settings.Compare)

	output := req.Output
	if output == "" {
		output = domain.DefaultReportPath
	}

	if !req.InMemory {
		return comparator.ComparePaths(ctx, req.PathA, req.PathB, output, opts)
	}

	bufA, err := readInput(req.PathA)
	if err != nil {
		return nil, err
	}
	bufB, err := readInput(req.PathB)
	if err != nil {
		return nil, err
	}

	res, err := comparator.CompareBuffers(ctx, bufA, bufB, opts)
	if err != nil {
		return nil, err
	}

	if res.ReportBuffer == nil {
		return res, nil
	}

	reportPath, err := writeReport(output, res.ReportBuffer)
	if err != nil {
		return nil, err
	}
	res.ReportPath = reportPath
	res.ReportBuffer = nil
	return res, nil
}

// UseJSONLogs switches the logger to JSON output if it supports switching.
func (a *App) UseJSONLogs(enable bool) {
	if s, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		s.SetJSON(enable)
	}
}

// Status reports whether the comparison interpreter is available.
func (a *App) Status() domain.SetupStatus {
	return a.setup.Status()
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-selected input document
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, path), "path", path)
	}
	return nil, zerr.With(zerr.Wrap(err, "failed to read input"), "path", path)
}

func writeReport(path string, data []byte) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, err.Error()), "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(abs), domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrOutputDirFailed, err.Error()), "path", filepath.Dir(abs))
	}
	if err := os.WriteFile(abs, data, domain.PrivateFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, err.Error()), "path", abs)
	}
	return abs, nil
}
