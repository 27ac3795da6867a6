package configs

// HTTP defines configuration for the HTTP server. Port is the TCP port
// the server binds to.
type HTTP struct {
	Port uint16 `env:"PORT" envDefault:"8080"`
}
