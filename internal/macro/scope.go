package macro

import "github.com/macrokit/midimacro/internal/match"

// Scope restricts a macro to windows whose identity satisfies the present
// matchers. Both fields nil means global scope.
type Scope struct {
	WindowClass *match.StringMatcher
	WindowName  *match.StringMatcher
}

// MatchesWindow reports whether a window with the given class and name
// falls inside the scope. Absent matchers impose no constraint.
func (s *Scope) MatchesWindow(class, name string) bool {
	if s.WindowClass != nil && !s.WindowClass.Matches(class) {
		return false
	}
	if s.WindowName != nil && !s.WindowName.Matches(name) {
		return false
	}
	return true
}
