package crypto

import "unicode/utf8"

const (
	LabelEmpty     = "Empty"
	LabelSecureKey = "Secure Key"
	MaxScore       = 4
)

var strengthLabels = [...]string{"Very Weak", "Weak", "Medium", "Strong", "Secure"}

// Strength is a coarse heuristic rating of a generated password.
type Strength struct {
	Score int
	Label string
}

// Estimate rates password using only its length and the number of character
// types enabled in opts. It does not measure entropy.
func Estimate(password string, opts Options) Strength {
	if password == "" {
		return Strength{Score: 0, Label: LabelEmpty}
	}

	length := utf8.RuneCountInString(password)
	types := opts.TypesEnabled()

	score := 0
	if length >= 8 {
		score++
	}
	if length >= 16 {
		score++
	}
	if types >= 3 && length >= 12 {
		score++
	}
	if types == 4 && length >= 16 {
		score++
	}

	// The score is shifted by one while the label is indexed by the raw
	// value, so "Very Weak" is never reported with score 0.
	return Strength{
		Score: min(score+1, MaxScore),
		Label: strengthLabels[min(score, MaxScore)],
	}
}

// KeyStrength is the fixed rating reported for raw random keys.
func KeyStrength() Strength {
	return Strength{Score: MaxScore, Label: LabelSecureKey}
}
