// Package trace exposes nil-able callback hooks fired by the registry and
// the result cursor. Hooks are consumed by log adapters and user probes.
package trace

type (
	// Driver traces registry and connection-opening events.
	Driver struct {
		OnRegister    func(DriverRegisterInfo)
		OnResolve     func(DriverResolveStartInfo) func(DriverResolveDoneInfo)
		OnBuildDriver func(DriverBuildStartInfo) func(DriverBuildDoneInfo)
		OnOpen        func(DriverOpenStartInfo) func(DriverOpenDoneInfo)
	}

	DriverRegisterInfo struct {
		Name      string
		Overwrite bool
	}

	DriverResolveStartInfo struct {
		Name string
	}

	DriverResolveDoneInfo struct {
		Error error
	}

	DriverBuildStartInfo struct {
		Name   string
		Target string
	}

	DriverBuildDoneInfo struct {
		Error error
	}

	DriverOpenStartInfo struct {
		Target string
	}

	DriverOpenDoneInfo struct {
		Error error
	}
)

// Compose returns a Driver firing both t's and x's hooks.
func (t Driver) Compose(x Driver) (ret Driver) {
	ret.OnRegister = composeOneShot(t.OnRegister, x.OnRegister)
	ret.OnResolve = compose(t.OnResolve, x.OnResolve)
	ret.OnBuildDriver = compose(t.OnBuildDriver, x.OnBuildDriver)
	ret.OnOpen = compose(t.OnOpen, x.OnOpen)

	return ret
}

func composeOneShot[Info any](a, b func(Info)) func(Info) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(info Info) {
			a(info)
			b(info)
		}
	}
}

func compose[Start, Done any](a, b func(Start) func(Done)) func(Start) func(Done) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(start Start) func(Done) {
			doneA := a(start)
			doneB := b(start)
			switch {
			case doneA == nil:
				return doneB
			case doneB == nil:
				return doneA
			default:
				return func(done Done) {
					doneA(done)
					doneB(done)
				}
			}
		}
	}
}
