package db

import (
	"context"
	"net/url"

	"github.com/lachlan/crystal-db/internal/dsn"
	"github.com/lachlan/crystal-db/internal/xerrors"
	"github.com/lachlan/crystal-db/log"
	"github.com/lachlan/crystal-db/trace"
)

type options struct {
	trace trace.Driver
}

type Option func(*options)

// WithTrace composes t onto the trace fired by this call.
func WithTrace(t trace.Driver) Option {
	return func(o *options) {
		o.trace = o.trace.Compose(t)
	}
}

// WithLogger wires logging of driver events through l.
func WithLogger(l log.Logger) Option {
	return WithTrace(log.Driver(l))
}

func callTrace(opts ...Option) trace.Driver {
	holder := options{trace: registry.driverTrace()}
	for _, opt := range opts {
		if opt != nil {
			opt(&holder)
		}
	}

	return holder.trace
}

// BuildDriver resolves the named driver and builds it from the parsed
// connection string.
func BuildDriver(name string, connectionString string, opts ...Option) (Driver, error) {
	t := callTrace(opts...)
	onDone := func(trace.DriverBuildDoneInfo) {}
	if onBuild := t.OnBuildDriver; onBuild != nil {
		if done := onBuild(trace.DriverBuildStartInfo{
			Name:   name,
			Target: connectionString,
		}); done != nil {
			onDone = done
		}
	}
	driver, err := buildDriver(name, connectionString, t)
	onDone(trace.DriverBuildDoneInfo{Error: err})

	return driver, err
}

func buildDriver(name string, connectionString string, t trace.Driver) (Driver, error) {
	factory, err := registry.resolve(name, t)
	if err != nil {
		return nil, err
	}
	uri, err := dsn.Parse(connectionString)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return factory(uri)
}

// Open builds the driver named by the connection string's scheme and asks
// it for a connection. Connection failures of the concrete driver propagate
// unwrapped.
func Open(ctx context.Context, connectionString string, opts ...Option) (Connection, error) {
	t := callTrace(opts...)
	onDone := func(trace.DriverOpenDoneInfo) {}
	if onOpen := t.OnOpen; onOpen != nil {
		if done := onOpen(trace.DriverOpenStartInfo{
			Target: connectionString,
		}); done != nil {
			onDone = done
		}
	}
	conn, err := open(ctx, connectionString, t)
	onDone(trace.DriverOpenDoneInfo{Error: err})

	return conn, err
}

func open(ctx context.Context, connectionString string, t trace.Driver) (Connection, error) {
	uri, err := dsn.Parse(connectionString)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	driver, err := buildDriverFromURI(uri, t)
	if err != nil {
		return nil, err
	}

	return driver.BuildConnection(ctx)
}

func buildDriverFromURI(uri *url.URL, t trace.Driver) (Driver, error) {
	factory, err := registry.resolve(uri.Scheme, t)
	if err != nil {
		return nil, err
	}

	return factory(uri)
}
