package httpserver

import "fmt"

// Config controls the API listener. Each service constructs it from its own
// environment variables (bind host and port).
type Config struct {
	Host string
	Port int

	// ServiceName is used in startup logs and span names.
	ServiceName string
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate ensures the listener configuration is usable.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("httpserver: invalid port %d", c.Port)
	}
	return nil
}
