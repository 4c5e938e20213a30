package strength

import "fmt"

// adviseTips derives remediation advice from the evaluation. Rules fire
// independently in a fixed order; the MFA tip is always last.
func adviseTips(length int, reasons []string, raw int, breach *int) []string {
	var tips []string

	if length < 12 {
		tips = append(tips, "Use at least 12 characters.")
	}

	if breach != nil && *breach > 0 {
		tips = append(tips, fmt.Sprintf("Found in %d breaches. Never reuse it.", *breach))
	}

	if containsReason(reasons, "missing uppercase") || containsReason(reasons, "missing lowercase") {
		tips = append(tips, "Mix uppercase and lowercase letters.")
	}

	if containsReason(reasons, "missing digit") {
		tips = append(tips, "Add numbers.")
	}

	if containsReason(reasons, "missing special") {
		tips = append(tips, "Add special characters (!,@,#,$, etc.)")
	}

	if raw < 50 {
		tips = append(tips, "Consider a passphrase or password manager.")
	}

	tips = append(tips, "Enable MFA for important accounts.")

	return tips
}

func containsReason(reasons []string, reason string) bool {
	for _, r := range reasons {
		if r == reason {
			return true
		}
	}

	return false
}
