// assets/embed.go
//
// Embedded default word list, used when WORDS_FILE is not configured.
// One word per line; blank lines and lines starting with '#' are skipped by
// the words package.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed wordlist.txt
var FS embed.FS

// DefaultName is the embedded list's file name.
const DefaultName = "wordlist.txt"

// OpenDefault opens the embedded default word list.
func OpenDefault() (fs.File, error) {
	return FS.Open(DefaultName)
}
