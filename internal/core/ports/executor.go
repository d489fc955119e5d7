// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pdfdiff/internal/core/domain"
)

// Executor runs the external interpreter as a child process.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the interpreter with its module flag: <interpreter> -m module args...
	//
	// A non-zero exit code is reported in the result, not as an error. Errors are
	// returned when the interpreter is unavailable, cannot be started, times out
	// or is killed by a signal.
	Execute(ctx context.Context, module string, args []string, opts domain.ExecutionOptions) (*domain.ExecutionResult, error)

	// RunScript runs an inline program: <interpreter> -c script args...
	RunScript(ctx context.Context, script string, args []string, opts domain.ExecutionOptions) (*domain.ExecutionResult, error)
}
