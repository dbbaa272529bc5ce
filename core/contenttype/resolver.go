package contenttype

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Resolver maps file names to MIME types.
// It is safe for concurrent use; the override table is never mutated after New.
type Resolver struct {
	overrides map[string]string
}

// New creates a Resolver with a private copy of the given override table.
func New(overrides map[string]string) *Resolver {
	table := make(map[string]string, len(overrides))
	for ext, mime := range overrides {
		table[ext] = mime
	}
	return &Resolver{overrides: table}
}

// Default returns the Resolver used by the server: extensionless files are HTML.
func Default() *Resolver {
	return New(map[string]string{"": fiber.MIMETextHTML})
}

// Ext returns the extension of name including the dot.
// A trailing bare dot ("file.") counts as no extension.
func Ext(name string) string {
	ext := path.Ext(name)
	if ext == "." {
		return ""
	}
	return ext
}

// Resolve returns the MIME type for the file name.
func (r *Resolver) Resolve(name string) string {
	ext := Ext(name)

	if mime, ok := r.overrides[ext]; ok {
		return mime
	}
	if mime, ok := r.overrides[strings.ToLower(ext)]; ok {
		return mime
	}

	if ext == "" {
		return fiber.MIMEOctetStream
	}
	return utils.GetMIME(ext)
}
