package rewrite

import "regexp"

// cmocka wraps its diagnostics in a marker column:
// `[   LINE   ] --- testcases.c(9): error: Failure!`
var cmockaMarker = regexp.MustCompile(`^\[   LINE   \] --- (.+)`)

// Special strips framework wrapping from a line whose location was
// already rewritten by Location. The empty string means no marker was
// present and the input should be used as-is.
func Special(line string) string {
	m := cmockaMarker.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}
