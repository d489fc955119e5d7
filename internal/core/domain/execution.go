package domain

import "time"

// ExecutionOptions controls a single interpreter run.
// The zero value of each field means "not set"; see Merge.
type ExecutionOptions struct {
	// InterpreterPath overrides setup detection when non-empty.
	InterpreterPath string
	// Timeout bounds the run. Zero means DefaultTimeout.
	Timeout time.Duration
	// WorkingDir is the child's working directory. Empty means the caller's.
	WorkingDir string
	// Env holds extra KEY=VALUE entries applied on top of the inherited environment.
	Env []string
}

// DefaultExecutionOptions returns the defaults every call is merged over.
func DefaultExecutionOptions() ExecutionOptions {
	return ExecutionOptions{
		Timeout: DefaultTimeout,
	}
}

// Merge returns a copy of o with every non-zero field of override applied.
// Neither o nor override is modified.
func (o ExecutionOptions) Merge(override ExecutionOptions) ExecutionOptions {
	merged := o
	if override.InterpreterPath != "" {
		merged.InterpreterPath = override.InterpreterPath
	}
	if override.Timeout > 0 {
		merged.Timeout = override.Timeout
	}
	if override.WorkingDir != "" {
		merged.WorkingDir = override.WorkingDir
	}
	if len(override.Env) > 0 {
		merged.Env = append(append([]string(nil), o.Env...), override.Env...)
	}
	return merged
}

// EffectiveTimeout returns the configured timeout, falling back to DefaultTimeout.
func (o ExecutionOptions) EffectiveTimeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

// ExecutionResult is the outcome of an interpreter run that exited on its own.
type ExecutionResult struct {
	RunID    string
	Stdout   string // trimmed
	Stderr   string // trimmed
	ExitCode int
	Duration time.Duration
}

// CombinedOutput joins the non-empty output streams with a newline.
func (r *ExecutionResult) CombinedOutput() string {
	switch {
	case r.Stdout != "" && r.Stderr != "":
		return r.Stdout + "\n" + r.Stderr
	case r.Stdout != "":
		return r.Stdout
	default:
		return r.Stderr
	}
}
