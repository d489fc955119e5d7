package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdfdiff/internal/core/domain"
)

func TestExecutionOptions_Merge(t *testing.T) {
	base := domain.ExecutionOptions{
		InterpreterPath: "/usr/bin/python3",
		Timeout:         time.Minute,
		WorkingDir:      "/project",
		Env:             []string{"A=1"},
	}

	t.Run("zero override keeps everything", func(t *testing.T) {
		assert.Equal(t, base, base.Merge(domain.ExecutionOptions{}))
	})

	t.Run("non-zero fields replace", func(t *testing.T) {
		merged := base.Merge(domain.ExecutionOptions{
			InterpreterPath: "/venv/bin/python",
			Timeout:         5 * time.Second,
			Env:             []string{"B=2"},
		})

		assert.Equal(t, "/venv/bin/python", merged.InterpreterPath)
		assert.Equal(t, 5*time.Second, merged.Timeout)
		assert.Equal(t, "/project", merged.WorkingDir)
		assert.Equal(t, []string{"A=1", "B=2"}, merged.Env)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		original := domain.ExecutionOptions{Env: make([]string, 1, 4)}
		original.Env[0] = "A=1"

		merged := original.Merge(domain.ExecutionOptions{Env: []string{"B=2"}})
		merged.Env[0] = "changed"

		assert.Equal(t, []string{"A=1"}, original.Env)
		assert.Equal(t, []string{"A=1", ""}, original.Env[:2])
	})
}

func TestExecutionOptions_EffectiveTimeout(t *testing.T) {
	assert.Equal(t, domain.DefaultTimeout, domain.ExecutionOptions{}.EffectiveTimeout())
	assert.Equal(t, domain.DefaultTimeout, domain.ExecutionOptions{Timeout: -time.Second}.EffectiveTimeout())
	assert.Equal(t, 3*time.Second, domain.ExecutionOptions{Timeout: 3 * time.Second}.EffectiveTimeout())
	assert.Equal(t, domain.DefaultTimeout, domain.DefaultExecutionOptions().Timeout)
}

func TestExecutionResult_CombinedOutput(t *testing.T) {
	tests := []struct {
		name   string
		result domain.ExecutionResult
		want   string
	}{
		{name: "both", result: domain.ExecutionResult{Stdout: "out", Stderr: "err"}, want: "out\nerr"},
		{name: "stdout only", result: domain.ExecutionResult{Stdout: "out"}, want: "out"},
		{name: "stderr only", result: domain.ExecutionResult{Stderr: "err"}, want: "err"},
		{name: "empty", result: domain.ExecutionResult{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.CombinedOutput())
		})
	}
}

func TestNoDifferences(t *testing.T) {
	res := domain.NoDifferences("No differences found")

	assert.True(t, res.Success)
	require.NotNil(t, res.PageCount)
	assert.Equal(t, 0, *res.PageCount)
	assert.Empty(t, res.ReportPath)
	assert.Nil(t, res.ReportBuffer)
	assert.False(t, res.HasDifferences())
	assert.Equal(t, "No differences found", res.Output)
}

func TestComparisonResult_HasDifferences(t *testing.T) {
	assert.True(t, (&domain.ComparisonResult{ReportPath: "/tmp/diff.pdf"}).HasDifferences())
	assert.True(t, (&domain.ComparisonResult{ReportBuffer: []byte{}}).HasDifferences())
	assert.False(t, (&domain.ComparisonResult{}).HasDifferences())
}

func TestCompareSettings_Merge(t *testing.T) {
	defaults := domain.DefaultCompareSettings()
	assert.Equal(t, domain.DefaultCompareModule, defaults.Module)
	assert.Equal(t, domain.DefaultNoDifferencesMarker, defaults.Marker)
	assert.Equal(t, domain.DefaultOutputFlag, defaults.OutputFlag)

	merged := defaults.Merge(domain.CompareSettings{Marker: "identical"})
	assert.Equal(t, domain.CompareSettings{
		Module:     domain.DefaultCompareModule,
		Marker:     "identical",
		OutputFlag: domain.DefaultOutputFlag,
	}, merged)
}

func TestDefaultSettings(t *testing.T) {
	settings := domain.DefaultSettings()
	assert.Equal(t, domain.DefaultExecutionOptions(), settings.Execution)
	assert.Equal(t, domain.DefaultCompareSettings(), settings.Compare)
	assert.False(t, settings.LogJSON)
}
