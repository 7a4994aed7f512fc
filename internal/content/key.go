package content

import (
	"path"
	"strings"
)

const defaultFile = "index.html"

// ResolveKey maps a gated request to an object key, keeping the result
// inside the "<course>/<lesson>/" subtree. An empty subpath serves the
// lesson's index file. Returns false for anything that would escape the
// subtree or name it directly.
func ResolveKey(courseID, lessonID, subpath string) (string, bool) {
	if courseID == "" || lessonID == "" {
		return "", false
	}
	if strings.ContainsRune(courseID, '/') || strings.ContainsRune(lessonID, '/') {
		return "", false
	}
	if courseID == "." || courseID == ".." || lessonID == "." || lessonID == ".." {
		return "", false
	}

	subpath = strings.TrimPrefix(subpath, "/")
	if subpath == "" {
		subpath = defaultFile
	}

	// rooted clean collapses any ".." before it can climb out
	cleaned := strings.TrimPrefix(path.Clean("/"+subpath), "/")
	if cleaned == "" || cleaned == "." {
		cleaned = defaultFile
	}

	prefix := courseID + "/" + lessonID + "/"
	key := prefix + cleaned
	if !strings.HasPrefix(key, prefix) || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}
