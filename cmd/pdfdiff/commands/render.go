package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go.trai.ch/pdfdiff/internal/core/domain"
	"go.trai.ch/pdfdiff/internal/ui/output"
	"go.trai.ch/pdfdiff/internal/ui/style"
)

type comparisonJSON struct {
	Differences bool   `json:"differences"`
	PageCount   *int   `json:"page_count"`
	Report      string `json:"report,omitempty"`
	Output      string `json:"output,omitempty"`
}

func newComparisonJSON(res *domain.ComparisonResult) comparisonJSON {
	return comparisonJSON{
		Differences: res.HasDifferences(),
		PageCount:   res.PageCount,
		Report:      res.ReportPath,
		Output:      res.Output,
	}
}

type statusJSON struct {
	InterpreterAvailable bool   `json:"interpreter_available"`
	Interpreter          string `json:"interpreter,omitempty"`
	Source               string `json:"source,omitempty"`
	PopplerAvailable     bool   `json:"poppler_available"`
	PopplerPath          string `json:"poppler_path,omitempty"`
}

func newStatusJSON(s domain.SetupStatus) statusJSON {
	return statusJSON{
		InterpreterAvailable: s.InterpreterAvailable,
		Interpreter:          s.InterpreterPath,
		Source:               string(s.Source),
		PopplerAvailable:     s.PopplerAvailable,
		PopplerPath:          s.PopplerPath,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderComparison(w io.Writer, res *domain.ComparisonResult) error {
	st := style.New(output.NewRenderer(w))

	if !res.HasDifferences() {
		_, err := fmt.Fprintln(w, st.Success.Render(style.Check+" No visual differences"))
		return err
	}

	pages := "unknown"
	if res.PageCount != nil {
		pages = strconv.Itoa(*res.PageCount)
	}

	_, err := fmt.Fprintf(w, "%s\n%s%s\n%s%s\n",
		st.Notice.Render(style.Warning+" Documents differ"),
		st.Label.Render("Report"), st.Value.Render(res.ReportPath),
		st.Label.Render("Pages"), st.Value.Render(pages),
	)
	return err
}

func renderStatus(w io.Writer, s domain.SetupStatus) error {
	st := style.New(output.NewRenderer(w))

	interpreter := st.Failure.Render(style.Cross + " not found")
	if s.InterpreterAvailable {
		interpreter = st.Success.Render(style.Check) + " " + st.Value.Render(s.InterpreterPath)
		if s.Source != domain.SourceNone {
			interpreter += " (" + string(s.Source) + ")"
		}
	}

	poppler := st.Failure.Render(style.Cross + " not found")
	switch {
	case s.PopplerAvailable && s.PopplerPath != "":
		poppler = st.Success.Render(style.Check) + " " + st.Value.Render(s.PopplerPath)
	case s.PopplerAvailable:
		poppler = st.Success.Render(style.Check) + " on PATH"
	}

	_, err := fmt.Fprintf(w, "%s\n%s%s\n%s%s\n",
		st.Title.Render("pdfdiff status"),
		st.Label.Render("Interpreter"), interpreter,
		st.Label.Render("Poppler"), poppler,
	)
	return err
}
