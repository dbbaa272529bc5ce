// Package publish uploads the generated site to an object storage bucket.
//
// Objects are written under their slash-separated path relative to the site
// root, with the Content-Type chosen by the same contenttype.Resolver the
// local server uses. Extensionless pages therefore keep rendering as HTML when
// the bucket is fronted by a CDN or S3 website endpoint.
//
// # Options
//
//   - DryRun: report what would be uploaded or removed without writing.
//   - Prune: remove bucket objects that no longer exist locally.
//
// Per-file failures are collected in the Report rather than aborting the run.
package publish
