package domain

// ComparisonResult describes the outcome of comparing two documents.
//
// A result without a report and with PageCount 0 means the documents have no
// visual differences. A result with a report means differences were found; its
// PageCount is nil when the report's pages could not be counted.
type ComparisonResult struct {
	Success   bool
	PageCount *int
	// ReportPath is set by path comparisons that found differences.
	ReportPath string
	// ReportBuffer is set by buffer comparisons that found differences.
	ReportBuffer []byte
	// Output is the comparison's combined stdout and stderr.
	Output string
}

// HasDifferences reports whether the comparison produced a report.
func (r *ComparisonResult) HasDifferences() bool {
	return r.ReportPath != "" || r.ReportBuffer != nil
}

// NoDifferences builds the result for documents that render identically.
func NoDifferences(output string) *ComparisonResult {
	zero := 0
	return &ComparisonResult{
		Success:   true,
		PageCount: &zero,
		Output:    output,
	}
}

// CompareSettings describes how the comparison package is invoked.
type CompareSettings struct {
	// Module is the package run with the interpreter's module flag.
	Module string
	// Marker is the literal the package prints when nothing differs.
	Marker string
	// OutputFlag precedes the report path.
	OutputFlag string
}

// DefaultCompareSettings returns the settings for the bundled comparison package.
func DefaultCompareSettings() CompareSettings {
	return CompareSettings{
		Module:     DefaultCompareModule,
		Marker:     DefaultNoDifferencesMarker,
		OutputFlag: DefaultOutputFlag,
	}
}

// Merge returns a copy of s with every non-empty field of override applied.
func (s CompareSettings) Merge(override CompareSettings) CompareSettings {
	merged := s
	if override.Module != "" {
		merged.Module = override.Module
	}
	if override.Marker != "" {
		merged.Marker = override.Marker
	}
	if override.OutputFlag != "" {
		merged.OutputFlag = override.OutputFlag
	}
	return merged
}
