package account

// Level buckets a strength score.
type Level int

const (
	Weak Level = iota
	Fair
	Good
	Strong
)

// MinScore is the lowest score accepted for a new password.
const MinScore = 3

func (l Level) String() string {
	switch l {
	case Fair:
		return "fair"
	case Good:
		return "good"
	case Strong:
		return "strong"
	}
	return "weak"
}

// Strength is a password strength assessment.
type Strength struct {
	Score int
	Level Level
}

// MeasureStrength counts the satisfied criteria among: length of at least 8,
// a lowercase letter, an uppercase letter, a digit, and a special character.
// Letter and digit classes are ASCII; any other rune counts as special.
func MeasureStrength(password string) Strength {
	var lower, upper, digit, special bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	score := 0
	for _, ok := range []bool{n >= 8, lower, upper, digit, special} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Level: levelFor(score)}
}

func levelFor(score int) Level {
	switch {
	case score >= 5:
		return Strong
	case score == 4:
		return Good
	case score == 3:
		return Fair
	}
	return Weak
}
