package ports

import (
	"context"

	"go.trai.ch/pdfdiff/internal/core/domain"
)

// Comparator compares two PDF documents visually.
//
//go:generate go run go.uber.org/mock/mockgen -source=comparator.go -destination=mocks/mock_comparator.go -package=mocks
type Comparator interface {
	// ComparePaths compares two files on disk and writes any report to outputPath.
	ComparePaths(
		ctx context.Context,
		pathA, pathB, outputPath string,
		opts domain.ExecutionOptions,
	) (*domain.ComparisonResult, error)

	// CompareBuffers compares two in-memory documents and returns any report in memory.
	CompareBuffers(ctx context.Context, bufA, bufB []byte, opts domain.ExecutionOptions) (*domain.ComparisonResult, error)

	// WithSettings returns a Comparator that invokes the comparison package as described by settings.
	WithSettings(settings domain.CompareSettings) Comparator
}
