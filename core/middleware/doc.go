// Package middleware groups Fiber middleware used by the serve command.
//
//   - rayid: assigns each request a correlation id, surfaced in logs via
//     logger.WithRayID.
package middleware
