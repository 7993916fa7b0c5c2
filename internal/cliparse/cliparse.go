// Package cliparse coerces the positional trial-count argument.
package cliparse

import "strconv"

// Trials parses a trial count with best effort. Malformed or negative
// input yields 0 trials rather than an error; ok reports whether the
// argument was taken at face value.
func Trials(arg string) (n int, ok bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
