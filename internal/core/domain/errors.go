package domain

import "go.trai.ch/zerr"

var (
	// ErrInterpreterUnavailable is returned when no interpreter path was given and
	// setup detection could not find one. No process is spawned.
	ErrInterpreterUnavailable = zerr.New("python interpreter is not available")

	// ErrInputNotFound is returned when one of the documents to compare does not exist.
	ErrInputNotFound = zerr.New("input file not found")

	// ErrLaunchFailed is returned when the interpreter process could not be started.
	ErrLaunchFailed = zerr.New("failed to start interpreter process")

	// ErrProcessTimeout is returned when the interpreter process exceeded its deadline.
	ErrProcessTimeout = zerr.New("interpreter process timed out")

	// ErrProcessTerminated is returned when the interpreter process was killed by a
	// signal that was not sent by the timeout handling.
	ErrProcessTerminated = zerr.New("interpreter process terminated by signal")

	// ErrComparisonFailed is returned when the comparison process exits with a non-zero status.
	ErrComparisonFailed = zerr.New("comparison failed")

	// ErrPageCountFailed is returned when the page count of a report could not be determined.
	ErrPageCountFailed = zerr.New("failed to count report pages")

	// ErrOutputDirFailed is returned when the report's parent directory cannot be created.
	ErrOutputDirFailed = zerr.New("failed to create output directory")

	// ErrStagingFailed is returned when in-memory documents cannot be written to the staging directory.
	ErrStagingFailed = zerr.New("failed to stage documents")

	// ErrReportReadFailed is returned when a produced report cannot be read back.
	ErrReportReadFailed = zerr.New("failed to read report")

	// ErrReportWriteFailed is returned when a report buffer cannot be written to disk.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTimeout is returned when a configured timeout is not a positive duration.
	ErrInvalidTimeout = zerr.New("invalid timeout, expected a positive duration such as '90s' or '2m'")
)
