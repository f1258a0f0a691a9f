package deque

import "reflect"

// clearOnVacate reports whether a deque with element type T must zero
// vacated slots. Pointer-free element types cannot keep anything alive, so
// buffers over them skip clearing entirely. The decision is made once per
// constructed deque, not per operation.
func clearOnVacate[T any]() bool {
	return !typeIsPointerFree(reflect.TypeFor[T]())
}

// typeIsPointerFree reports whether values of t can never transitively
// hold a reference.
func typeIsPointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || typeIsPointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !typeIsPointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, slices, maps, channels, funcs, strings, interfaces
		// and anything unsized may reference heap memory.
		return false
	}
}
