package tasks

import (
	"fmt"
	"sort"
	"strings"
)

// Listing renders the two-column help listing: one line per task that has
// a summary, sorted by name, names padded to a common width. Tasks without
// a summary are omitted.
func (r *Registry) Listing() string {
	names := make([]string, 0, len(r.order))
	width := 0
	for _, n := range r.order {
		t := r.tasks[n]
		if t.Summary == "" {
			continue
		}
		names = append(names, n)
		if len(n) > width {
			width = len(n)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "%-*s  %s\n", width, n, r.tasks[n].Summary)
	}
	return b.String()
}
