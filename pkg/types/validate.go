package types

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimeLayout is the storage format for pickup and return times.
const TimeLayout = "2006-01-02 15:04:05"

// emailPattern matches from the start of the value only, so trailing junk
// after a valid local@domain.tld prefix is accepted.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return upperCaser.String(string(r[:1])) + lowerCaser.String(string(r[1:]))
}

// ValidateID checks a primary or foreign key value: longer than 6 characters
// with no letters. Applies to Person.ID, Car.Serial, and every reference to
// them.
func ValidateID(field, v string) (string, error) {
	if len(v) <= 6 || hasLetter(v) {
		return "", fmt.Errorf("%w: %s %q cannot contain letters or be under 7 characters", ErrValidation, field, v)
	}
	return v, nil
}

// ValidateName checks a name field (first name, last name, brand): longer
// than 2 characters with no digits. The accepted value is capitalized.
func ValidateName(field, v string) (string, error) {
	if len(v) <= 2 || hasDigit(v) {
		return "", fmt.Errorf("%w: %s %q cannot contain numbers or be under 3 characters", ErrValidation, field, v)
	}
	return capitalize(v), nil
}

// ValidateModel checks a car model. Only the length rule applies; unlike
// brand, digits are allowed ("Model 3"). The accepted value is capitalized.
func ValidateModel(v string) (string, error) {
	if len(v) <= 2 {
		return "", fmt.Errorf("%w: model %q cannot be under 3 characters", ErrValidation, v)
	}
	return capitalize(v), nil
}

// ValidateAge checks an age value. Letters always fail. A value that parses
// as an integer must lie strictly between 17 and 120. A non-alphabetic value
// that does not parse (punctuation) is accepted unchanged; this mirrors the
// historical rule and is pinned by a regression test.
func ValidateAge(v string) (string, error) {
	if hasLetter(v) {
		return "", fmt.Errorf("%w: age %q must be between 18-119 and cannot contain letters", ErrValidation, v)
	}
	if n, err := strconv.Atoi(v); err == nil && !(17 < n && n < 120) {
		return "", fmt.Errorf("%w: age %q must be between 18-119", ErrValidation, v)
	}
	return v, nil
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(v string) (string, error) {
	if !emailPattern.MatchString(v) {
		return "", fmt.Errorf("%w: email address %q is not in the correct format", ErrValidation, v)
	}
	return v, nil
}

// ValidatePhone checks a phone number: exactly 10 characters, no letters.
func ValidatePhone(v string) (string, error) {
	if len(v) != 10 || hasLetter(v) {
		return "", fmt.Errorf("%w: phone number %q cannot contain letters and must be 10 characters long", ErrValidation, v)
	}
	return v, nil
}

// ValidateYear checks a model year: exactly 4 characters, no letters.
func ValidateYear(v string) (int, error) {
	if len(v) != 4 || hasLetter(v) {
		return 0, fmt.Errorf("%w: year %q cannot contain letters and must be 4 characters long", ErrValidation, v)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not a number", ErrValidation, v)
	}
	return n, nil
}

// ValidateEngine checks an engine displacement: 3-4 characters, no letters.
func ValidateEngine(v string) (int, error) {
	if len(v) <= 2 || len(v) >= 5 || hasLetter(v) {
		return 0, fmt.Errorf("%w: engine size %q cannot contain letters and must be between 3-4 characters", ErrValidation, v)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: engine size %q is not a number", ErrValidation, v)
	}
	return n, nil
}

// ValidateDayCost checks a daily rental cost: under 6 characters, no letters.
func ValidateDayCost(v string) (int, error) {
	if len(v) >= 6 || hasLetter(v) {
		return 0, fmt.Errorf("%w: price %q cannot contain letters and must be under 6 characters", ErrValidation, v)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", ErrValidation, v)
	}
	return n, nil
}

// ValidateKM checks an odometer reading: no letters.
func ValidateKM(v string) (int, error) {
	if hasLetter(v) {
		return 0, fmt.Errorf("%w: kilometer amount %q cannot contain letters", ErrValidation, v)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: kilometer amount %q is not a number", ErrValidation, v)
	}
	return n, nil
}

// ValidateTime checks and parses a pickup or return time. The letters rule
// is applied first; a value that passes it but does not parse in the strict
// YYYY-MM-DD HH:MM:SS layout fails with the parse error attached.
func ValidateTime(field, v string) (time.Time, error) {
	if hasLetter(v) {
		return time.Time{}, fmt.Errorf("%w: %s %q must be in the YYYY-MM-DD HH:MM:SS format and cannot contain letters", ErrValidation, field, v)
	}
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q does not parse: %v", ErrValidation, field, v, err)
	}
	return t, nil
}
