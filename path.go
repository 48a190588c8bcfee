package trellodoc

import (
	"regexp"
	"strings"
)

// placeholderPattern matches one bracketed path segment, e.g. "[board id]".
var placeholderPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// PathParams returns the placeholder names of a path template in left-to-right
// order of appearance. Spaces become underscores; a name reappearing later in
// the path is dropped.
func PathParams(path string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(path, -1) {
		name := strings.ReplaceAll(m[1], " ", "_")
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// PathTemplate rewrites bracketed placeholders into :name form:
// "/boards/[board id]/cards" becomes "/boards/:board_id/cards".
func PathTemplate(path string) string {
	return placeholderPattern.ReplaceAllStringFunc(path, func(m string) string {
		return ":" + strings.ReplaceAll(m[1:len(m)-1], " ", "_")
	})
}
