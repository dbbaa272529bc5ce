// Package contenttype resolves the MIME type of a served file from its name.
//
// A Resolver holds an explicit override table, keyed by extension (including
// the leading dot, or the empty string for files without one). Overrides are
// consulted before the built-in table shared with the Fiber framework.
//
// # Default Policy
//
// The generated site uses "pretty" URLs whose files have no extension, so the
// default table maps the empty extension to text/html:
//
//	r := contenttype.Default()
//	r.Resolve("posts/hello")    // "text/html"
//	r.Resolve("assets/site.css") // "text/css"
package contenttype
