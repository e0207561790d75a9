package profile

import (
	"regexp"
	"unicode"
)

var (
	identifierExpr = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	disallowedExpr = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// ValidateIdentifier checks identifier rules: letters, digits and underscore, not empty, not digit-led
func ValidateIdentifier(id string) error {
	switch {
	case id == "":
		return &ValidationError{ID: id, Reason: "empty"}
	case disallowedExpr.MatchString(id):
		return &ValidationError{ID: id, Reason: "only letters, digits and underscore are allowed"}
	case unicode.IsDigit(rune(id[0])):
		return &ValidationError{ID: id, Reason: "starts with a digit"}
	}
	return nil
}

// SanitizeIdentifier rewrites id into a valid identifier not reported as taken.
// Disallowed characters are stripped, an empty or digit-led result is prefixed with
// an underscore, then underscores are appended until the identifier is free.
func SanitizeIdentifier(id string, taken func(id string) bool) string {
	result := disallowedExpr.ReplaceAllString(id, "")
	if result == "" || !identifierExpr.MatchString(result) {
		result = "_" + result
	}
	if taken == nil {
		return result
	}
	for taken(result) {
		result += "_"
	}
	return result
}
