package server

// Server is the lifecycle contract of the transport servers.
type Server interface {
	// RunServer starts every transport and blocks until they stop.
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}
