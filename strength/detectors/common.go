package detectors

import "strings"

const commonPasswordPenalty = 70

type commonDetector struct {
	set map[string]struct{}
}

// Common fires on a case-insensitive exact match against the built-in list of
// known weak passwords, extended with any extra words given.
func Common(extra ...string) Detector {
	set := make(map[string]struct{}, len(commonPasswords)+len(extra))
	for _, w := range commonPasswords {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[strings.ToLower(w)] = struct{}{}
	}

	return &commonDetector{set: set}
}

func (d *commonDetector) Detect(password string) (Finding, bool) {
	if _, ok := d.set[strings.ToLower(password)]; !ok {
		return Finding{}, false
	}

	return Finding{Reason: "common password", Penalty: commonPasswordPenalty}, true
}
