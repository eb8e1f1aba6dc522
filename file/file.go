package file

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9#]+`)

// ExportPath names an export file after the chord, with a uuid so repeated
// exports never collide.
func ExportPath(dir, root, chordType, ext string) string {
	slug := strings.Trim(unsafeChars.ReplaceAllString(root+"-"+chordType, "-"), "-")
	slug = strings.ReplaceAll(slug, "#", "s")
	return filepath.Join(dir, slug+"-"+uuid.New().String()+ext)
}
