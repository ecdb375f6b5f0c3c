package server

// Server is the process-level lifecycle of the HTTP API.
type Server interface {
	// RunServer serves until SIGINT or SIGTERM, then drains in-flight
	// requests.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests up
	// to the configured timeout.
	Shutdown()
}
