package module

import "reflect"

// PortsOf finds a T in m.Ports(): either the bundle itself or one of its exported struct fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if t, ok := bundle.(T); ok {
		return t, true
	}
	v := reflect.ValueOf(bundle)
	if v.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range v.NumField() {
		f := v.Field(i)
		if !f.CanInterface() {
			continue
		}
		if t, ok := f.Interface().(T); ok {
			return t, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for bootstrap code, where a missing port is a wiring bug
func MustPortsOf[T any](m Module) T {
	t, ok := PortsOf[T](m)
	if !ok {
		panic("module: " + m.Name() + " has no port of type " + reflect.TypeFor[T]().String())
	}
	return t
}
