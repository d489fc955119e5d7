// Package setup discovers the Python interpreter and Poppler binaries used for comparisons.
package setup

import (
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/pdfdiff/internal/core/domain"
)

// virtualenvCandidates are interpreter locations relative to the project root, in lookup order.
var virtualenvCandidates = []string{
	filepath.Join(".venv", "bin", "python"),
	filepath.Join("venv", "bin", "python"),
	filepath.Join(".venv", "Scripts", "python.exe"),
	filepath.Join("venv", "Scripts", "python.exe"),
}

// pathInterpreters are looked up on PATH when no other interpreter is configured.
var pathInterpreters = []string{"python3", "python"}

const popplerProbe = "pdftoppm"

// Detector implements ports.SetupProvider by inspecting the environment and filesystem.
type Detector struct {
	root     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewDetector creates a Detector that resolves project-relative paths against root.
func NewDetector(root string) *Detector {
	return &Detector{
		root:     root,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Status reports the interpreter and Poppler locations.
func (d *Detector) Status() domain.SetupStatus {
	popplerPath, popplerFound := d.findPoppler()
	status := domain.SetupStatus{
		PopplerAvailable: popplerFound,
		PopplerPath:      popplerPath,
	}

	if path, source, ok := d.findInterpreter(); ok {
		status.InterpreterAvailable = true
		status.InterpreterPath = path
		status.Source = source
	}
	return status
}

func (d *Detector) findInterpreter() (string, domain.SetupSource, bool) {
	if override := d.getenv(domain.InterpreterEnvVar); override != "" {
		if isExecutable(override) {
			return override, domain.SourceEnv, true
		}
	}

	for _, rel := range virtualenvCandidates {
		candidate := filepath.Join(d.root, rel)
		if isExecutable(candidate) {
			return candidate, domain.SourceVirtualenv, true
		}
	}

	for _, name := range pathInterpreters {
		if path, err := d.lookPath(name); err == nil {
			return path, domain.SourcePath, true
		}
	}

	return "", domain.SourceNone, false
}

// findPoppler returns a directory to prepend to PATH, which is empty when
// Poppler is missing or already reachable through PATH.
func (d *Detector) findPoppler() (string, bool) {
	if dir := d.getenv(domain.PopplerEnvVar); dir != "" && isDir(dir) {
		return dir, true
	}

	vendored := filepath.Join(d.root, domain.VendoredPopplerPath())
	if isDir(vendored) {
		return vendored, true
	}

	if _, err := d.lookPath(popplerProbe); err == nil {
		return "", true
	}
	return "", false
}

func isExecutable(file string) bool {
	info, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := info.Mode()
	if m.IsDir() {
		return false
	}
	// Windows has no executable bit; a regular file is enough there.
	return filepath.Ext(file) == ".exe" || m&0o111 != 0
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
