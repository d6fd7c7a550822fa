package server_test

import (
	"testing"

	"site-preview/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		cfg  server.Config
		addr string
		url  string
	}{
		{"Loopback", server.Config{Host: "127.0.0.1", Port: "1421"}, "127.0.0.1:1421", "http://127.0.0.1:1421"},
		{"AllInterfaces", server.Config{Host: "", Port: "9000"}, ":9000", "http://:9000"},
		{"IPv6", server.Config{Host: "::1", Port: "1421"}, "[::1]:1421", "http://[::1]:1421"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.addr, tt.cfg.Addr())
			assert.Equal(t, tt.url, tt.cfg.BaseURL())
		})
	}
}
