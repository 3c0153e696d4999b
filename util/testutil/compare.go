package testutil

import "strings"

// Trims each line and drops empty ones. Useful to compare multiline outputs with indented expectations.
func TrimLineSpaces(str string) string {
	a := strings.Split(str, "\n")
	u := []string{}
	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" {
			u = append(u, s)
		}
	}
	return strings.Join(u, "\n")
}
