package format

import (
	"regexp"
	"strings"
	"time"
)

// Clinical and profile helpers the dashboard renders next to the
// formatted dates and amounts.

// BMI computes body-mass index from weight in kilograms and height in
// meters, rounded to one decimal.
func BMI(weightKg, heightM float64) float64 {
	if weightKg <= 0 || heightM <= 0 {
		return 0
	}
	bmi := weightKg / (heightM * heightM)
	return float64(int(bmi*10+0.5)) / 10
}

// BMICategory maps a bmi value onto the standard WHO bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	}
	return "Obese"
}

// Age computes a person's age in whole years from their date of birth.
func Age(dateOfBirth string, now time.Time) int {
	birth := ParseWhen(dateOfBirth)
	if birth.IsZero() {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Initials returns up to two uppercase initials for a display name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
		if len([]rune(b.String())) >= 2 {
			break
		}
	}
	return b.String()
}

// Truncate shortens text to maxLength runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether the string contains a plausible phone
// number: 1 to 16 digits not starting with zero, punctuation ignored.
func IsValidPhone(phone string) bool {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	return len(d) >= 1 && len(d) <= 16 && d[0] != '0'
}
