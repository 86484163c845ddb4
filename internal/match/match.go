// Package match provides the reusable scalar predicates that event matchers,
// scopes, and preconditions are built from. Matchers are immutable once
// constructed and their Matches methods are pure.
package match

import "strings"

// StringMode selects how a StringMatcher compares a candidate string.
type StringMode string

// StringMode constants. These double as the spelling used in configuration
// files, so they are part of the version-1 schema vocabulary.
const (
	StringIs         StringMode = "is"
	StringContains   StringMode = "contains"
	StringStartsWith StringMode = "starts_with"
	StringEndsWith   StringMode = "ends_with"
	StringAny        StringMode = "any"
)

// ValidStringModes returns the set of recognized string matcher modes.
func ValidStringModes() map[StringMode]struct{} {
	return map[StringMode]struct{}{
		StringIs:         {},
		StringContains:   {},
		StringStartsWith: {},
		StringEndsWith:   {},
		StringAny:        {},
	}
}

// StringMatcher matches a candidate string against a fixed pattern.
// Comparisons are exact and case-sensitive.
type StringMatcher struct {
	Mode  StringMode
	Value string
}

// NewStringMatcher constructs a matcher with the given mode and pattern.
func NewStringMatcher(mode StringMode, value string) *StringMatcher {
	return &StringMatcher{Mode: mode, Value: value}
}

// StringEquals constructs an exact-equality matcher.
func StringEquals(value string) *StringMatcher {
	return &StringMatcher{Mode: StringIs, Value: value}
}

// Matches reports whether candidate satisfies the matcher.
// An unrecognized mode never matches.
func (m *StringMatcher) Matches(candidate string) bool {
	switch m.Mode {
	case StringIs:
		return candidate == m.Value
	case StringContains:
		return strings.Contains(candidate, m.Value)
	case StringStartsWith:
		return strings.HasPrefix(candidate, m.Value)
	case StringEndsWith:
		return strings.HasSuffix(candidate, m.Value)
	case StringAny:
		return true
	default:
		return false
	}
}

// numberMode is the internal tag for NumberMatcher variants.
type numberMode int

const (
	numberVal numberMode = iota
	numberRange
	numberAny
)

// NumberMatcher matches a candidate integer against an exact value, an
// inclusive range, or anything at all.
type NumberMatcher struct {
	mode numberMode
	val  int
	min  int
	max  int
}

// NumberVal constructs a matcher that accepts exactly n.
func NumberVal(n int) *NumberMatcher {
	return &NumberMatcher{mode: numberVal, val: n}
}

// NumberRange constructs a matcher that accepts min through max inclusive.
// Callers are expected to have validated min <= max.
func NumberRange(min, max int) *NumberMatcher {
	return &NumberMatcher{mode: numberRange, min: min, max: max}
}

// NumberAny constructs a matcher that accepts every integer.
func NumberAny() *NumberMatcher {
	return &NumberMatcher{mode: numberAny}
}

// Matches reports whether candidate satisfies the matcher.
func (m *NumberMatcher) Matches(candidate int) bool {
	switch m.mode {
	case numberVal:
		return candidate == m.val
	case numberRange:
		return candidate >= m.min && candidate <= m.max
	case numberAny:
		return true
	default:
		return false
	}
}
