// Package commands exposes the host shell commands over the control API.
//
// The host application drives the preview server by invoking commands by
// name with a JSON object of arguments, the same way a desktop shell invokes
// backend commands. Each command returns a string result or an error string.
//
// # Commands
//
//   - start_server {folder}: starts the preview server on http://127.0.0.1:8080.
//   - stop_server: stops the preview server.
//   - server_status: reports whether the preview server is running.
//   - greet {name}: returns a greeting.
//
// # HTTP Endpoints
//
//   - POST /commands/:name : Invokes a command. Body is the argument object.
//   - GET /commands : Lists the registered command names.
//   - GET /status : Returns the preview server state as JSON.
//
// Lifecycle errors are returned to the caller as-is and mapped to HTTP
// statuses: 409 for already running / not running, 503 when the preview port
// is taken, 400 for missing arguments and 404 for unknown commands.
package commands
