package ports

import "go.trai.ch/pdfdiff/internal/core/domain"

// SetupProvider reports whether the comparison interpreter is installed.
//
//go:generate go run go.uber.org/mock/mockgen -source=setup.go -destination=mocks/mock_setup.go -package=mocks
type SetupProvider interface {
	// Status inspects the environment synchronously and returns the interpreter status.
	Status() domain.SetupStatus
}
