// Package http implements the REST transport of the eat-around backend.
//
// It wires the chi router, decodes JSON requests into typed models, calls
// the service layer and maps service errors to JSON error envelopes.
// Request tracing, access logging, metrics, compression and the bearer
// token gate are middleware in this package.
package http
