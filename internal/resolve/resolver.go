// Package resolve substitutes bare filenames in canonical diagnostic
// lines with full paths discovered under a configured working
// directory.
package resolve

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Matches `FILENAME.EXT(LOCATION):` at the start of a line whose
// location was already rewritten to the canonical notation.
var barePattern = regexp.MustCompile(`((^.+)\.(.+))(\(.+\)):`)

// Bare resolves a bare filename at the head of line to a full path by
// searching workingDir recursively. The first match in lexical walk
// order wins, keeping the traversal deterministic per run. The empty
// string means no substitution was performed: the filename already
// carries a path separator, the line does not look canonical, or the
// file was not found anywhere under workingDir.
func Bare(line, workingDir string, log hclog.Logger) string {
	if workingDir == "" {
		return ""
	}

	m := barePattern.FindStringSubmatchIndex(line)
	if m == nil {
		return ""
	}
	filename := line[m[2]:m[3]]
	location := line[m[8]:m[9]]

	// A separator means the line already has an absolute or relative path.
	if strings.ContainsAny(filename, `/\`) {
		return ""
	}

	found := ""
	// Bounded to workingDir; WalkDir never ascends above its root.
	err := filepath.WalkDir(workingDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if !d.IsDir() && d.Name() == filename {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil || found == "" {
		log.Debug("bare filename not found in working directory", "name", filename, "dir", workingDir)
		return ""
	}

	log.Debug("resolved bare filename", "name", filename, "path", found)
	return found + location + ":" + line[m[1]:]
}
