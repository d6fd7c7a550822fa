// Package preview runs the local static-file preview server.
//
// At most one preview server runs per Registry. The Registry holds the
// ShutdownHandle of the running server; the Runner claims it on Start and
// hands it back on Stop.
//
// # Lifecycle
//
//	Idle -> Starting -> Running -> Stopping -> Idle
//
// Start binds the listener before it returns, so a port conflict is reported
// as ErrBindFailed rather than being lost inside the serve goroutine. Stop
// fires the handle and waits until the serve goroutine has released the port.
//
// # Routing
//
//   - GET / : serves <folder>/index.html, or 404 when it is missing.
//   - GET /<path> : serves the file under <folder>, or 404.
//
// Every response carries "Access-Control-Allow-Origin: *" and
// "Cache-Control: no-cache".
//
// # Usage
//
//	runner := preview.NewRunner(preview.NewRegistry(), logger)
//	addr, err := runner.Start("./site")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("serving on", preview.URL(addr))
//	defer runner.Stop(context.Background())
package preview
