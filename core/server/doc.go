// Package server holds the control API server configuration.
//
// The control API is the local HTTP surface through which the host shell
// invokes commands such as start_server and stop_server. It is separate from
// the preview server, whose address is fixed by package preview.
//
// # Configuration
//
// The Config struct defines the host and port of the control API
// (SERVER_HOST, SERVER_PORT).
package server
