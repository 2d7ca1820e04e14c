package tui

import (
	"net/url"
	"strings"

	"github.com/google/shlex"
)

// ParseDroppedPaths extracts file paths from text a terminal pasted when
// files were dropped on it. Paths may be separated by whitespace or
// newlines, quoted with ' or ", backslash-escaped, or given as file://
// URIs. Paths are returned in the order they appear. Text with an
// unterminated quote yields no paths.
func ParseDroppedPaths(text string) []string {
	words, err := shlex.Split(text)
	if err != nil {
		return nil
	}

	var paths []string
	for _, word := range words {
		if path := normalizeDroppedPath(word); path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

// normalizeDroppedPath turns a file:// URI into a path and trims stray
// whitespace. Other URI schemes are rejected.
func normalizeDroppedPath(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}

	if strings.Contains(token, "://") {
		u, err := url.Parse(token)
		if err != nil || u.Scheme != "file" {
			return ""
		}
		if u.Host != "" && u.Host != "localhost" {
			return ""
		}
		return u.Path
	}

	return token
}
