package setup

// NewDetectorWithLookups creates a Detector with injected environment and PATH lookups.
func NewDetectorWithLookups(root string, getenv func(string) string, lookPath func(string) (string, error)) *Detector {
	return &Detector{
		root:     root,
		getenv:   getenv,
		lookPath: lookPath,
	}
}
