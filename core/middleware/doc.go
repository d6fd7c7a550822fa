// Package middleware contains HTTP middleware for the fiber applications.
//
// # Components
//
//   - rayid: Generates a request id (RayID) for every incoming request,
//     stores it in the context and echoes it in the X-Ray-ID header.
//   - requestlog: Logs each request with zap, tagged with its RayID.
//   - fresh: Disables caching and allows any origin on every response of the
//     preview server.
//
// The control API registers rayid and requestlog; the preview server registers
// all three plus fiber's cors middleware.
package middleware
