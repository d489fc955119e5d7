// Package compare drives the external comparison package over files and in-memory documents.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Comparator implements ports.Comparator.
type Comparator struct {
	executor ports.Executor
	counter  ports.PageCounter
	logger   ports.Logger
	tracer   ports.Tracer
	settings domain.CompareSettings
}

// NewComparator creates a Comparator that runs the default comparison package.
func NewComparator(
	executor ports.Executor,
	counter ports.PageCounter,
	logger ports.Logger,
	tracer ports.Tracer,
) *Comparator {
	return &Comparator{
		executor: executor,
		counter:  counter,
		logger:   logger,
		tracer:   tracer,
		settings: domain.DefaultCompareSettings(),
	}
}

// WithSettings returns a copy of c with settings merged over its current ones.
func (c *Comparator) WithSettings(settings domain.CompareSettings) ports.Comparator {
	clone := *c
	clone.settings = c.settings.Merge(settings)
	return &clone
}

// ComparePaths compares the documents at pathA and pathB. When they differ the
// report is written to outputPath and its location returned in the result.
func (c *Comparator) ComparePaths(
	ctx context.Context,
	pathA, pathB, outputPath string,
	opts domain.ExecutionOptions,
) (*domain.ComparisonResult, error) {
	ctx, span := c.tracer.Start(ctx, "compare.paths")
	defer span.End()
	span.SetAttribute("compare.module", c.settings.Module)

	res, err := c.comparePaths(ctx, pathA, pathB, outputPath, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("compare.differences", res.HasDifferences())
	if res.PageCount != nil {
		span.SetAttribute("compare.page_count", *res.PageCount)
	}
	return res, nil
}

func (c *Comparator) comparePaths(
	ctx context.Context,
	pathA, pathB, outputPath string,
	opts domain.ExecutionOptions,
) (*domain.ComparisonResult, error) {
	absA, absB, absOut, err := absolutePaths(pathA, pathB, outputPath)
	if err != nil {
		return nil, err
	}

	for _, input := range []string{absA, absB} {
		if _, statErr := os.Stat(input); statErr != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, input), "path", input)
		}
	}

	if err := os.MkdirAll(filepath.Dir(absOut), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirFailed, err.Error()), "path", filepath.Dir(absOut))
	}

	args := []string{absA, absB, c.settings.OutputFlag, absOut}
	run, err := c.executor.Execute(ctx, c.settings.Module, args, opts)
	if err != nil {
		return nil, err
	}

	combined := run.CombinedOutput()
	if run.ExitCode != 0 {
		msg := fmt.Sprintf("comparison exited with code %d", run.ExitCode)
		if combined != "" {
			msg += ": " + combined
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrComparisonFailed, msg), "exit_code", run.ExitCode)
	}

	markerFound := strings.Contains(combined, c.settings.Marker)
	artifactFound := fileExists(absOut)

	if markerFound || !artifactFound {
		if !markerFound {
			c.logger.Warn(fmt.Sprintf("no report was written to %s and no %q marker was printed; treating as no differences",
				absOut, c.settings.Marker))
		}
		return domain.NoDifferences(combined), nil
	}

	result := &domain.ComparisonResult{
		Success:    true,
		ReportPath: absOut,
		Output:     combined,
	}

	count, err := c.counter.CountPages(ctx, absOut, opts)
	if err != nil {
		c.logger.With("path", absOut).Warn(fmt.Sprintf("page count unavailable: %v", err))
		return result, nil
	}
	result.PageCount = &count
	return result, nil
}

// CompareBuffers stages bufA and bufB in a fresh temporary directory, compares
// them, and returns any report in memory. The directory is always removed.
func (c *Comparator) CompareBuffers(
	ctx context.Context,
	bufA, bufB []byte,
	opts domain.ExecutionOptions,
) (*domain.ComparisonResult, error) {
	ctx, span := c.tracer.Start(ctx, "compare.buffers")
	defer span.End()

	res, err := c.compareBuffers(ctx, bufA, bufB, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return res, nil
}

func (c *Comparator) compareBuffers(
	ctx context.Context,
	bufA, bufB []byte,
	opts domain.ExecutionOptions,
) (*domain.ComparisonResult, error) {
	dir, err := os.MkdirTemp("", domain.StagingDirPattern)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrStagingFailed, err.Error())
	}
	defer func() {
		_ = os.RemoveAll(dir)
	}()

	pathA := filepath.Join(dir, domain.StagedFirstName)
	pathB := filepath.Join(dir, domain.StagedSecondName)
	outPath := filepath.Join(dir, domain.StagedReportName)

	var g errgroup.Group
	g.Go(func() error { return os.WriteFile(pathA, bufA, domain.PrivateFilePerm) })
	g.Go(func() error { return os.WriteFile(pathB, bufB, domain.PrivateFilePerm) })
	if err := g.Wait(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStagingFailed, err.Error()), "dir", dir)
	}

	res, err := c.ComparePaths(ctx, pathA, pathB, outPath, opts)
	if err != nil {
		return nil, err
	}

	out := &domain.ComparisonResult{
		Success:   res.Success,
		PageCount: res.PageCount,
		Output:    res.Output,
	}

	if res.ReportPath != "" {
		data, err := os.ReadFile(res.ReportPath) // #nosec G304 -- path is inside our staging directory
		switch {
		case err == nil:
			out.ReportBuffer = data
		case !errors.Is(err, fs.ErrNotExist):
			return nil, zerr.With(zerr.Wrap(domain.ErrReportReadFailed, err.Error()), "path", res.ReportPath)
		}
	}

	return out, nil
}

func absolutePaths(paths ...string) (a, b, out string, err error) {
	abs := make([]string, len(paths))
	for i, p := range paths {
		abs[i], err = filepath.Abs(p)
		if err != nil {
			return "", "", "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", p)
		}
	}
	return abs[0], abs[1], abs[2], nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
