// Package app provides application initialization and lifecycle management
// for the FlightPulse server. It wires configuration, logging, observability,
// the analytics service, and the HTTP transport together at startup and
// handles graceful shutdown.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize logging and observability
//	3. Load the flight table and build the analytics service
//	4. Set up HTTP handlers and middleware
//	5. Configure and start the HTTP server
//	6. Set up graceful shutdown handlers
//
// # Usage
//
// The main entry point is typically:
//
//	app, err := app.NewApplication()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// The package handles SIGINT and SIGTERM signals to ensure active requests
// are completed and final metrics are flushed before the process exits.
// Initialization errors are returned to the caller; the package never calls
// os.Exit() directly.
package app
