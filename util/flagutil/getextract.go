package flagutil

import (
	"strings"
)

// Gets a flag value before the flagset is parsed (ex: a config file to be loaded before other flags override its values). Scanning stops at "--".
func GetFlagString(args []string, name string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return "", false
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		n := strings.TrimLeft(arg, "-")
		if k := strings.Index(n, "="); k >= 0 {
			if n[:k] == name {
				return n[k+1:], true
			}
			continue
		}
		if n == name {
			if i+1 >= len(args) {
				return "", false // missing spaced value
			}
			return args[i+1], true
		}
	}
	return "", false
}
