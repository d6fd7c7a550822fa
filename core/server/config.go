package server

import "net"

// Config holds configuration for the control API server.
type Config struct {
	// Host is the interface the control API listens on.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the control API will listen.
	Port string `mapstructure:"port" default:"1421"`
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// BaseURL returns the http URL clients use to reach the control API.
func (c Config) BaseURL() string {
	return "http://" + c.Addr()
}
