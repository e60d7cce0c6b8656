// Package unmatched logs device calls that no route answers.
//
// After the route dispatch completes, the final status is inspected. A 404 (unknown
// path) or 405 (known path, other method) produces a single error-level entry with the
// method and full URL. This is how undocumented firmware calls are discovered so
// routes can be added for them later. Every other status passes silently.
package unmatched
