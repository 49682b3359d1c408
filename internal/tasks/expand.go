package tasks

import (
	"fmt"
	"os"
	"strings"
)

// Expand substitutes $NAME and ${NAME} references in command using vars,
// falling back to the process environment for names not present in vars.
func Expand(command string, vars map[string]string) string {
	return os.Expand(command, func(name string) string {
		if v, ok := vars[name]; ok {
			return v
		}
		return os.Getenv(name)
	})
}

// ParseOverrides splits args into make-style NAME=VALUE overrides and the
// remaining arguments. An override name must be non-empty and must not
// contain whitespace; anything else is passed through untouched.
func ParseOverrides(args []string) (map[string]string, []string, error) {
	vars := make(map[string]string)
	var rest []string
	for _, a := range args {
		eq := strings.IndexByte(a, '=')
		if eq <= 0 {
			rest = append(rest, a)
			continue
		}
		name := a[:eq]
		if strings.ContainsAny(name, " \t") {
			return nil, nil, fmt.Errorf("invalid override %q: name contains whitespace", a)
		}
		vars[name] = a[eq+1:]
	}
	return vars, rest, nil
}
