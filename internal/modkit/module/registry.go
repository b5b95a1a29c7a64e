package module

import "sync"

// The registry records each mounted module's ports by name so tests and
// late-bound callers can reach them without holding the module itself.
var registry sync.Map

func Register(name string, ports any) { registry.Store(name, ports) }

func PortsAs[T any](name string) (T, bool) {
	v, _ := registry.Load(name)
	t, ok := v.(T)
	return t, ok
}

// Reset forgets every registration
func Reset() { registry.Clear() }
