// Package pagecount counts report pages by running a short script in the interpreter.
package pagecount

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/core/ports"
	"go.trai.ch/zerr"
)

// countScript prints the page count of the PDF named by its first argument.
const countScript = `import sys
import pdfplumber

with pdfplumber.open(sys.argv[1]) as pdf:
    print(len(pdf.pages))
`

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Counter implements ports.PageCounter on top of a ports.Executor.
type Counter struct {
	executor ports.Executor
}

// NewCounter creates a new Counter.
func NewCounter(executor ports.Executor) *Counter {
	return &Counter{executor: executor}
}

// CountPages returns the number of pages in the PDF at path.
func (c *Counter) CountPages(ctx context.Context, path string, opts domain.ExecutionOptions) (int, error) {
	res, err := c.executor.RunScript(ctx, countScript, []string{path}, opts)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrPageCountFailed, err.Error()), "path", path)
	}

	if res.ExitCode != 0 {
		err := zerr.Wrap(domain.ErrPageCountFailed, fmt.Sprintf("script exited with code %d", res.ExitCode))
		return 0, zerr.With(err, "path", path)
	}

	if !digitsOnly.MatchString(res.Stdout) {
		err := zerr.Wrap(domain.ErrPageCountFailed, fmt.Sprintf("unexpected output %q", res.Stdout))
		return 0, zerr.With(err, "path", path)
	}

	count, err := strconv.Atoi(res.Stdout)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrPageCountFailed, err.Error()), "path", path)
	}
	return count, nil
}
