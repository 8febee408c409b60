package catalog

import "strings"

// IntroHasHeading reports whether the intro markdown opens with its own
// top-level heading, in which case hosts show it in place of the title.
func IntroHasHeading(intro string) bool {
	return strings.HasPrefix(strings.TrimSpace(intro), "# ")
}
