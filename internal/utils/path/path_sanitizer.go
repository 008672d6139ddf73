package pathutils

import (
	"path/filepath"
	"strings"
)

// PathSanitizer normalizes candidate file paths consistently across commands.
type PathSanitizer struct {
	homeExpander *HomeExpander
}

// NewPathSanitizer constructs a PathSanitizer using the provided expander.
// A nil expander falls back to the operating system lookup.
func NewPathSanitizer(homeExpander *HomeExpander) *PathSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &PathSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, and removes
// blanks and duplicates while preserving the original candidate order.
func (sanitizer *PathSanitizer) Sanitize(candidatePaths []string) []string {
	expander := sanitizer.homeExpander
	if expander == nil {
		expander = NewHomeExpander()
	}

	seenPaths := map[string]struct{}{}
	sanitizedPaths := make([]string, 0, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		trimmedCandidate := strings.TrimSpace(candidatePath)
		if len(trimmedCandidate) == 0 {
			continue
		}

		expandedPath := expander.Expand(trimmedCandidate)
		if len(expandedPath) == 0 {
			continue
		}

		comparisonKey := filepath.Clean(expandedPath)
		if _, alreadySeen := seenPaths[comparisonKey]; alreadySeen {
			continue
		}
		seenPaths[comparisonKey] = struct{}{}
		sanitizedPaths = append(sanitizedPaths, expandedPath)
	}

	if len(sanitizedPaths) == 0 {
		return nil
	}
	return sanitizedPaths
}
