package cmd

// Config carries the service configuration read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// EventBusURL is the base URL of the shared event bus.
	EventBusURL string
	// EventCallbackURL is the address the bus delivers subscribed events
	// to, as reachable from the bus (not from localhost).
	EventCallbackURL string
}
