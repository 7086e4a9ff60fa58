package profile

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/project-lint/project-lint/internal/log"
)

// globFiles walks root and returns the relative paths of regular files
// matching pattern. Patterns use slash-separated glob segments with **
// matching any number of directories.
func globFiles(root, pattern string) []string {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if globMatch(pattern, rel) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		log.Warn("glob walk failed for %s: %v", root, err)
	}
	return matches
}

// globMatch matches a slash-separated relative path against a glob
// pattern, segment by segment, with ** spanning zero or more segments.
func globMatch(pattern, path string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

func matchSegments(pat, segs []string) bool {
	if len(pat) == 0 {
		return len(segs) == 0
	}
	if pat[0] == "**" {
		// ** may consume zero or more path segments.
		for i := 0; i <= len(segs); i++ {
			if matchSegments(pat[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	ok, err := filepath.Match(pat[0], segs[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pat[1:], segs[1:])
}
