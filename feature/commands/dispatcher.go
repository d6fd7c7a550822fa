package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"site-preview/core/utils"
)

// Command names understood by the dispatcher.
const (
	CommandStartServer  = "start_server"
	CommandStopServer   = "stop_server"
	CommandServerStatus = "server_status"
	CommandGreet        = "greet"
)

var (
	// ErrUnknownCommand is returned when no command is registered under a name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("missing argument")
)

// Args holds the named arguments of a command invocation.
type Args map[string]any

// String returns the argument key as a string.
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, key)
	}
	return utils.ToString(v), nil
}

// CommandFunc runs one command.
type CommandFunc func(ctx context.Context, args Args) (string, error)

// Dispatcher routes command invocations by name.
type Dispatcher struct {
	commands map[string]CommandFunc
}

// NewDispatcher creates a dispatcher with the built-in commands of svc registered.
func NewDispatcher(svc *Service) *Dispatcher {
	d := &Dispatcher{commands: make(map[string]CommandFunc)}

	d.Register(CommandStartServer, func(_ context.Context, args Args) (string, error) {
		folder, err := args.String("folder")
		if err != nil {
			return "", err
		}
		return svc.StartServer(folder)
	})
	d.Register(CommandStopServer, func(ctx context.Context, _ Args) (string, error) {
		return svc.StopServer(ctx)
	})
	d.Register(CommandServerStatus, func(_ context.Context, _ Args) (string, error) {
		st := svc.Status()
		if !st.Running {
			return "stopped", nil
		}
		return "running on " + st.URL, nil
	})
	d.Register(CommandGreet, func(_ context.Context, args Args) (string, error) {
		name, err := args.String("name")
		if err != nil {
			return "", err
		}
		return svc.Greet(name), nil
	})

	return d
}

// Register adds or replaces a command.
func (d *Dispatcher) Register(name string, fn CommandFunc) {
	d.commands[name] = fn
}

// Names returns the registered command names in sorted order.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the command registered under name.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args Args) (string, error) {
	fn, ok := d.commands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if args == nil {
		args = Args{}
	}
	return fn(ctx, args)
}
