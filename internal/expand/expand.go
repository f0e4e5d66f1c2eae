// Package expand substitutes the "$$" marker with the shell's process ID.
package expand

import (
	"strconv"
	"strings"
)

const marker = "$$"

// PID replaces the first occurrence of "$$" in token with the decimal form
// of pid. Later occurrences in the same token survive verbatim; tokens
// without the marker are returned unchanged.
func PID(token string, pid int) string {
	if !strings.Contains(token, marker) {
		return token
	}
	return strings.Replace(token, marker, strconv.Itoa(pid), 1)
}
