// Package site serves the generated static site.
//
// Every GET or HEAD request path is cleaned and resolved inside the root
// directory; nothing outside it is ever served.
//
// # Behavior
//
//   - Regular file: 200 with Content-Type, Content-Length and Last-Modified.
//   - Directory without trailing slash: 301 to the slash form.
//   - Directory: index.html or index.htm, else an HTML listing (when Browse is on).
//   - Missing path or traversal attempt: 404.
//   - Other methods: 501.
//
// Content types come from a contenttype.Resolver, so extensionless pages such
// as /posts/hello are served as text/html.
package site
