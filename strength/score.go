package strength

import "math"

// Entropy contributes up to 60 of the 100 raw points, saturating.
const (
	entropyDivisor  = 4
	entropyScale    = 10
	maxEntropyScore = 60

	categoryBonus = 5
)

// Length bonus bands: <8, 8-11, 12-15, >=16 characters.
func lengthBonus(length int) int {
	switch {
	case length >= 16:
		return 12
	case length >= 12:
		return 8
	case length >= 8:
		return 4
	default:
		return 0
	}
}

// rawScore aggregates the entropy base, category diversity bonus, length
// bonus, and detector penalties into a score clamped to [0,100].
func rawScore(entropy float64, categories, length, penalties int) int {
	base := math.Min(entropy/entropyDivisor*entropyScale, maxEntropyScore)

	raw := int(base + float64(categories*categoryBonus+lengthBonus(length)-penalties))

	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}

// labels is indexed by the normalized 0-10 score.
var labels = [11]string{
	"Very Weak",
	"Weak", "Weak",
	"Fair", "Fair",
	"Good", "Good",
	"Strong", "Strong",
	"Excellent", "Excellent",
}

// normalize maps a raw 0-100 score to the 0-10 scale and its label.
func normalize(raw int) (int, string) {
	scaled := int(math.Round(float64(raw) / 10.0))
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 10 {
		scaled = 10
	}

	return scaled, labels[scaled]
}
