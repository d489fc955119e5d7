package domain

// SetupSource names where an interpreter was discovered.
type SetupSource string

const (
	// SourceNone means no interpreter was found.
	SourceNone SetupSource = ""
	// SourceEnv means the interpreter came from InterpreterEnvVar.
	SourceEnv SetupSource = "env"
	// SourceVirtualenv means the interpreter lives in a project virtualenv.
	SourceVirtualenv SetupSource = "venv"
	// SourcePath means the interpreter was found on PATH.
	SourcePath SetupSource = "path"
)

// SetupStatus reports whether the interpreter needed for comparisons is installed.
type SetupStatus struct {
	InterpreterAvailable bool
	InterpreterPath      string
	// PopplerAvailable reports whether pdftoppm was found anywhere.
	PopplerAvailable bool
	// PopplerPath is a directory to prepend to the child's PATH. It is empty
	// when Poppler is missing or already reachable through PATH.
	PopplerPath string
	Source      SetupSource
}

// Settings is the merged, validated project configuration.
type Settings struct {
	Execution ExecutionOptions
	Compare   CompareSettings
	LogJSON   bool
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Execution: DefaultExecutionOptions(),
		Compare:   DefaultCompareSettings(),
	}
}
