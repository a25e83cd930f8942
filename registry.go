package db

import (
	"sort"

	"github.com/lachlan/crystal-db/internal/xerrors"
	"github.com/lachlan/crystal-db/internal/xsync"
	"github.com/lachlan/crystal-db/trace"
)

var registry = &driverRegistry{factories: make(map[string]DriverFactory)}

// driverRegistry is process-wide state: drivers register themselves from
// their init functions, possibly concurrently.
type driverRegistry struct {
	factories    map[string]DriverFactory
	factoriesMtx xsync.RWMutex

	trace    trace.Driver
	traceMtx xsync.RWMutex
}

func (r *driverRegistry) driverTrace() (t trace.Driver) {
	r.traceMtx.WithRLock(func() {
		t = r.trace
	})

	return t
}

func (r *driverRegistry) register(name string, factory DriverFactory) {
	var overwrite bool
	r.factoriesMtx.WithLock(func() {
		_, overwrite = r.factories[name]
		r.factories[name] = factory
	})
	if onRegister := r.driverTrace().OnRegister; onRegister != nil {
		onRegister(trace.DriverRegisterInfo{
			Name:      name,
			Overwrite: overwrite,
		})
	}
}

func (r *driverRegistry) unregister(name string) {
	r.factoriesMtx.WithLock(func() {
		delete(r.factories, name)
	})
}

func (r *driverRegistry) resolve(name string, t trace.Driver) (DriverFactory, error) {
	onDone := func(trace.DriverResolveDoneInfo) {}
	if onResolve := t.OnResolve; onResolve != nil {
		if done := onResolve(trace.DriverResolveStartInfo{Name: name}); done != nil {
			onDone = done
		}
	}
	factory := xsync.WithRLock(&r.factoriesMtx, func() DriverFactory {
		return r.factories[name]
	})
	if factory == nil {
		err := xerrors.WithStackTrace(&UnknownDriverError{Name: name}, xerrors.WithSkipDepth(1))
		onDone(trace.DriverResolveDoneInfo{Error: err})

		return nil, err
	}
	onDone(trace.DriverResolveDoneInfo{})

	return factory, nil
}

func (r *driverRegistry) names() []string {
	names := xsync.WithRLock(&r.factoriesMtx, func() []string {
		names := make([]string, 0, len(r.factories))
		for name := range r.factories {
			names = append(names, name)
		}

		return names
	})
	sort.Strings(names)

	return names
}

// Register makes a driver factory available under the given name. The last
// registration for a name wins; registering never fails.
func Register(name string, factory DriverFactory) {
	registry.register(name, factory)
}

// Unregister removes a registered driver. Mostly useful in tests.
func Unregister(name string) {
	registry.unregister(name)
}

// Resolve looks the name up and fails with an UnknownDriverError when the
// name was never registered. This is the only error condition.
func Resolve(name string) (DriverFactory, error) {
	return registry.resolve(name, registry.driverTrace())
}

// Drivers returns a sorted snapshot of the registered driver names.
func Drivers() []string {
	return registry.names()
}

// SetTrace composes t onto the trace fired by registry operations and Open.
func SetTrace(t trace.Driver) {
	registry.traceMtx.WithLock(func() {
		registry.trace = registry.trace.Compose(t)
	})
}
