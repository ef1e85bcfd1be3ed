package utils

import (
	"reflect"
)

// IdentitySet is a set of references keyed by the address they point to. Used by the collector
// to remember what has been marked.
type IdentitySet map[uintptr]bool

// Add associates the given reference to the set.
// Returns true if the reference was added, false if it was already present or if it has no
// identity (nil or not a reference type).
func (m IdentitySet) Add(key interface{}) bool {
	p, ok := identity(key)
	if !ok || m[p] {
		return false
	}
	m[p] = true
	return true
}

// Include returns true if the set contains the reference
func (m IdentitySet) Include(key interface{}) bool {
	p, ok := identity(key)
	return ok && m[p]
}

func identity(obj interface{}) (uintptr, bool) {
	if obj == nil {
		return 0, false
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
	default:
		return 0, false
	}
	if v.IsNil() {
		return 0, false
	}
	t := v.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	// All empty structs may share the same pointer in Go, so for empty structs, the
	// identity is their type
	if t.Size() == 0 {
		return reflect.ValueOf(t).Pointer(), true
	}
	return v.Pointer(), true
}
