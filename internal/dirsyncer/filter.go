package dirsyncer

import (
	ignore "github.com/sabhiram/go-gitignore"
)

//filter matches source-relative, slash-separated paths against gitignore-style exclusion patterns.
//A nil filter excludes nothing.
type filter struct {
	matcher *ignore.GitIgnore
}

func newFilter(patterns []string) *filter {
	if len(patterns) == 0 {
		return nil
	}
	return &filter{matcher: ignore.CompileIgnoreLines(patterns...)}
}

func (f *filter) excludes(relPath string, isDir bool) bool {
	if f == nil || relPath == "" {
		return false
	}
	if f.matcher.MatchesPath(relPath) {
		return true
	}
	return isDir && f.matcher.MatchesPath(relPath+"/")
}
