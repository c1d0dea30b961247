// Package server runs the HTTP and gRPC transports of the eat-around
// backend with signal handling and graceful shutdown.
package server
