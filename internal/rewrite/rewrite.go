// Package rewrite turns the location notation of the supported tool
// dialects into the canonical `path(line,column):` form that editors
// can jump from.
package rewrite

import "regexp"

// dialect is one recognized location syntax: a pattern plus the splice
// that rewrites its leftmost match. Dialects are independent so no
// capture-group indices leak between them.
type dialect struct {
	name    string
	re      *regexp.Regexp
	rewrite func(line string, m []int) string
}

// Probed in order; the first dialect whose pattern matches wins and
// only its leftmost match is rewritten.
var dialects = []dialect{
	{
		// GCC, Doxygen, cmocka: `src/file.c:124:43: warning: ...`,
		// column optional: `src/file.c:124: warning: ...`
		name: "colon",
		re:   regexp.MustCompile(`:(\d+):((\d+):)?`),
		rewrite: func(line string, m []int) string {
			lineNo := line[m[2]:m[3]]
			if m[6] >= 0 {
				col := line[m[6]:m[7]]
				return splice(line, m, "("+lineNo+","+col+"):")
			}
			return splice(line, m, "("+lineNo+"):")
		},
	},
	{
		// BullseyeCoverage: `"c:/file.c",276  Warning[Pe177]: ...`
		name: "quoted",
		re:   regexp.MustCompile(`"(.+)",(\d+)`),
		rewrite: func(line string, m []int) string {
			path := line[m[2]:m[3]]
			lineNo := line[m[4]:m[5]]
			return splice(line, m, path+"("+lineNo+"):")
		},
	},
	{
		// IAR Embedded Workbench: `c:\file.h(43) : Warning[Pe1105]: ...`
		name: "paren",
		re:   regexp.MustCompile(`\((\d+)\) :`),
		rewrite: func(line string, m []int) string {
			lineNo := line[m[2]:m[3]]
			return splice(line, m, "("+lineNo+"):")
		},
	},
}

// Location rewrites the first recognized location pattern in line to
// the canonical notation. The empty string means no dialect matched,
// which callers treat as "already canonical or unsupported".
func Location(line string) string {
	for _, d := range dialects {
		if m := d.re.FindStringSubmatchIndex(line); m != nil {
			return d.rewrite(line, m)
		}
	}
	return ""
}

// splice replaces the whole match m[0]:m[1] with repl, leaving the
// rest of the line untouched.
func splice(line string, m []int, repl string) string {
	return line[:m[0]] + repl + line[m[1]:]
}
