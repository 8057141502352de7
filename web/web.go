// Package web carries the embedded browser frontend.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the frontend assets rooted at index.html.
func Static() (fs.FS, error) {
	return fs.Sub(static, "static")
}
