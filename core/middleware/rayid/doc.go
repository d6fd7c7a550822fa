// Package rayid assigns a request id (RayID) to every incoming request.
//
// The id is stored in the fiber context locals under LocalsKey, where
// logger.WithRayID picks it up, and echoed back in the X-Ray-ID header.
package rayid
