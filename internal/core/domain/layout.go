package domain

import (
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "pdfdiff.yaml"

	// StagingDirPattern is the os.MkdirTemp pattern for buffer comparisons.
	StagingDirPattern = "pdfdiff-*"

	// StagedFirstName is the file name the first in-memory document is staged as.
	StagedFirstName = "a.pdf"

	// StagedSecondName is the file name the second in-memory document is staged as.
	StagedSecondName = "b.pdf"

	// StagedReportName is the file name of the report inside the staging directory.
	StagedReportName = "diff.pdf"

	// DefaultReportPath is the report path used by the CLI when none is given.
	DefaultReportPath = "diff.pdf"

	// ModuleFlag makes the interpreter run a module as a script.
	ModuleFlag = "-m"

	// ScriptFlag makes the interpreter run an inline program.
	ScriptFlag = "-c"

	// DefaultCompareModule is the comparison package entry point.
	DefaultCompareModule = "compare_pdf"

	// DefaultNoDifferencesMarker is printed by the comparison package when the
	// documents render identically.
	DefaultNoDifferencesMarker = "No differences found"

	// DefaultOutputFlag precedes the report path on the comparison command line.
	DefaultOutputFlag = "-o"

	// InterpreterEnvVar overrides interpreter discovery.
	InterpreterEnvVar = "PDFDIFF_PYTHON"

	// PopplerEnvVar points at a directory containing the Poppler binaries.
	PopplerEnvVar = "PDFDIFF_POPPLER_PATH"

	// DefaultTimeout bounds a single interpreter run.
	DefaultTimeout = 120 * time.Second

	// KillGracePeriod is how long a process may take to exit after SIGTERM before SIGKILL.
	KillGracePeriod = 5 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for staged and report files (rw-------).
	PrivateFilePerm = 0o600
)

// VendoredPopplerPath returns the location of a vendored Poppler build
// relative to the project root.
func VendoredPopplerPath() string {
	return filepath.Join("vendor", "poppler", "Library", "bin")
}
