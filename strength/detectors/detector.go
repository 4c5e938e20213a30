package detectors

// Finding describes a single weakness found in a password.
type Finding struct {
	Reason string

	// Word and Similarity are only set for dictionary findings.
	Word       string
	Similarity float64

	Penalty int
}

//go:generate counterfeiter . Detector

// Detector checks a password for one class of weakness. Detectors are
// independent of each other; a password may trip any number of them.
type Detector interface {
	Detect(password string) (Finding, bool)
}
