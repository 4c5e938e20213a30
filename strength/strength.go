// Package strength scores how hard a password would be to guess and explains
// the verdict. Scoring is a pure function of the password and the breach
// count; the breach lookup is the only outward call and its failure never
// fails an evaluation.
package strength

import (
	"math"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/technical-param/password-checker-web/strength/detectors"
)

//go:generate counterfeiter . BreachLookup

// BreachLookup reports how many times a password appears in known breach
// corpora. 0 means not found; an error means the answer is unknown.
type BreachLookup interface {
	CountForPassword(logger lager.Logger, password string) (int, error)
}

// Result is the complete outcome of evaluating one password.
//
// The submitted password is deliberately not echoed back.
type Result struct {
	// Score is on the 0-10 scale; Label is its fixed human-readable band.
	Score int    `json:"score"`
	Label string `json:"label"`

	// Reasons lists every weakness found, in detector order.
	Reasons []string `json:"reasons"`

	// Entropy is the bits-of-entropy estimate, rounded to one decimal.
	Entropy float64 `json:"entropy"`

	// Breach is the number of known breaches containing the password, or
	// null when the lookup failed or was skipped.
	Breach *int `json:"breach"`

	Tips []string `json:"tips"`
}

// BreachKnown reports whether the breach lookup produced an answer.
func (r Result) BreachKnown() bool {
	return r.Breach != nil
}

// BreachCount is the known breach count, 0 when unknown.
func (r Result) BreachCount() int {
	if r.Breach == nil {
		return 0
	}
	return *r.Breach
}

// Evaluator runs the full scoring pipeline. It holds no per-call state and is
// safe for concurrent use.
type Evaluator struct {
	detectors []detectors.Detector
	breach    BreachLookup
}

// New returns an Evaluator with the default detector set. A nil BreachLookup
// skips the breach check entirely, leaving the breach count unknown.
func New(breach BreachLookup) *Evaluator {
	return NewWithDetectors(breach, detectors.DefaultSet())
}

// NewWithDetectors returns an Evaluator over a custom detector set. Detector
// order fixes the reason ordering in results.
func NewWithDetectors(breach BreachLookup, ds []detectors.Detector) *Evaluator {
	return &Evaluator{
		detectors: ds,
		breach:    breach,
	}
}

// Evaluate scores a single password. It always returns a complete Result;
// breach-lookup failures degrade to an unknown breach count and a recorded
// reason.
func (e *Evaluator) Evaluate(logger lager.Logger, password string) Result {
	logger = logger.Session("evaluate")
	logger.Debug("starting")
	defer logger.Debug("done")

	if password == "" {
		return Result{
			Score:   0,
			Label:   labels[0],
			Reasons: []string{"empty password"},
			Entropy: 0,
			Tips:    adviseTips(0, nil, 0, nil),
		}
	}

	profile := EstimateCharset(password)
	entropy := Bits(password, profile.AlphabetSize)
	length := utf8.RuneCountInString(password)

	var (
		reasons   []string
		penalties int
	)
	for _, detector := range e.detectors {
		if finding, found := detector.Detect(password); found {
			reasons = append(reasons, finding.Reason)
			penalties += finding.Penalty
		}
	}

	raw := rawScore(entropy, profile.CategoryCount(), length, penalties)

	var breach *int
	if e.breach != nil {
		count, err := e.breach.CountForPassword(logger, password)
		if err != nil {
			logger.Error("leak-check-failed", err)
			reasons = append(reasons, "leak-check failed")
		} else {
			breach = &count
			if count > 0 {
				raw = 0
				reasons = append(reasons, "found in breaches")
			}
		}
	}

	score, label := normalize(raw)

	return Result{
		Score:   score,
		Label:   label,
		Reasons: reasons,
		Entropy: math.Round(entropy*10) / 10,
		Breach:  breach,
		Tips:    adviseTips(length, reasons, raw, breach),
	}
}
