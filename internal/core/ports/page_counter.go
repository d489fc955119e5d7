package ports

import (
	"context"

	"go.trai.ch/pdfdiff/internal/core/domain"
)

// PageCounter counts the pages of a rendered report.
//
//go:generate go run go.uber.org/mock/mockgen -source=page_counter.go -destination=mocks/mock_page_counter.go -package=mocks
type PageCounter interface {
	CountPages(ctx context.Context, path string, opts domain.ExecutionOptions) (int, error)
}
