// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the item endpoints. Authorisation of
//     the individual user is the WordPress side's job; this only keeps the API private.
//   - rayid: generates a Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
package middleware
