// Package config provides the configuration loader for pdfdiff.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the configuration at path and merges it over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Configfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	settings, err := l.toSettings(&file, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

func (l *Loader) toSettings(file *Configfile, baseDir string) (*domain.Settings, error) {
	timeout, err := ParseTimeout(file.Timeout)
	if err != nil {
		return nil, err
	}

	override := domain.ExecutionOptions{
		InterpreterPath: resolveInterpreter(file.Interpreter, baseDir),
		Timeout:         timeout,
		WorkingDir:      resolveDir(file.WorkingDir, baseDir),
		Env:             envSlice(file.Env),
	}

	if override.WorkingDir != "" {
		if info, statErr := l.FS.Stat(override.WorkingDir); statErr != nil || !info.IsDir() {
			l.Logger.Warn(fmt.Sprintf("configured working_dir %q is not a directory", override.WorkingDir))
		}
	}

	settings := domain.DefaultSettings()
	settings.Execution = settings.Execution.Merge(override)
	settings.Compare = settings.Compare.Merge(domain.CompareSettings{
		Module: file.Module,
		Marker: file.Marker,
	})
	settings.LogJSON = file.Log.JSON
	return settings, nil
}

// ParseTimeout accepts a Go duration ("90s", "2m") or a bare number of milliseconds.
// An empty value means "not set".
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if ms <= 0 {
			return 0, zerr.With(zerr.Wrap(domain.ErrInvalidTimeout, raw), "timeout", raw)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidTimeout, raw), "timeout", raw)
	}
	return d, nil
}

// resolveInterpreter makes a relative interpreter path absolute against baseDir.
// Bare command names are left for PATH lookup.
func resolveInterpreter(interpreter, baseDir string) string {
	if interpreter == "" || filepath.IsAbs(interpreter) || !strings.ContainsAny(interpreter, `/\`) {
		return interpreter
	}
	return filepath.Join(baseDir, interpreter)
}

func resolveDir(dir, baseDir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

func envSlice(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
