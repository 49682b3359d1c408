package tasks

import "github.com/sahilm/fuzzy"

// Suggest returns up to max task names that fuzzy-match input, best first.
func (r *Registry) Suggest(input string, max int) []string {
	matches := fuzzy.Find(input, r.Names())
	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
