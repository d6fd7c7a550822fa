package preview

import (
	"path/filepath"
)

const (
	// DefaultAddr is the loopback address the preview server binds to.
	DefaultAddr = "127.0.0.1:8080"
	// IndexFile is the document served for the root path.
	IndexFile = "index.html"
)

// ServerConfig describes one preview server lifetime.
// It is built once by Start and never mutated afterwards.
type ServerConfig struct {
	// Folder is the root of the served file tree.
	Folder string
	// Addr is the host:port to listen on.
	Addr string
	// IndexPath is the document served for "/".
	IndexPath string
}

// NewServerConfig derives the config for serving folder on addr.
func NewServerConfig(folder, addr string) ServerConfig {
	if addr == "" {
		addr = DefaultAddr
	}
	return ServerConfig{
		Folder:    folder,
		Addr:      addr,
		IndexPath: filepath.Join(folder, IndexFile),
	}
}

// URL returns the http URL for a host:port address.
func URL(addr string) string {
	return "http://" + addr
}
